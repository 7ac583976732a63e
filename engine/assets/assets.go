package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/vitrum/engine/assets/loaders"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// FnOnAssetChanged is called from the watcher goroutine when an indexed
// asset is created or rewritten. name is relative to the assets directory.
type FnOnAssetChanged func(name string, assetType metadata.ResourceType)

type AssetManager struct {
	baseDir string
	assets  map[string]AssetInfo
	loaders map[string]Loader

	mutex sync.RWMutex

	done      chan struct{}
	fsnotify  *fsnotify.Watcher
	isClosed  bool
	listeners []FnOnAssetChanged
	wg        sync.WaitGroup
}

func NewAssetManager() (*AssetManager, error) {
	return &AssetManager{
		assets:  make(map[string]AssetInfo),
		loaders: make(map[string]Loader),
		done:    make(chan struct{}),
	}, nil
}

// Initialize indexes every asset under assetsDir and, when watch is set,
// keeps the index current through fsnotify.
func (am *AssetManager) Initialize(assetsDir string, watch bool) error {
	abs, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	am.baseDir = abs

	// Register loaders
	am.registerLoader(".glb", &loaders.GLTFLoader{})
	am.registerLoader(".gltf", &loaders.GLTFLoader{})
	am.registerLoader(".scene.toml", &loaders.SceneLoader{})

	if watch {
		fsWatch, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		am.fsnotify = fsWatch
		am.wg.Add(1)
		go am.start()
	}
	if err := am.watchRecursive(am.baseDir); err != nil {
		return err
	}
	core.LogInfo("Asset manager indexed %d assets under %s.", am.count(), am.baseDir)
	return nil
}

// Shutdown stops the watcher, if any.
func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	am.mutex.Unlock()

	if am.fsnotify != nil {
		close(am.done)
		am.wg.Wait()
	}
	return nil
}

// OnChange registers fn to be notified of asset writes.
func (am *AssetManager) OnChange(fn FnOnAssetChanged) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.listeners = append(am.listeners, fn)
}

// Register loaders for each file extension
func (am *AssetManager) registerLoader(ext string, loader Loader) {
	am.loaders[ext] = loader
}

// LoadAsset loads the asset at name (relative to the assets directory).
func (am *AssetManager) LoadAsset(name string, params interface{}) (*metadata.Resource, error) {
	path := am.Resolve(name)

	am.mutex.Lock()
	asset, exists := am.assets[path]
	if exists {
		asset.LastLoaded = time.Now()
		am.assets[path] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, path)
	}

	loader, loaderExists := am.loaders[assetExtension(path)]
	if !loaderExists {
		return nil, fmt.Errorf("%w: %s", core.ErrNoLoader, asset.Type)
	}
	return loader.Load(path, params)
}

func (am *AssetManager) UnloadAsset(asset *metadata.Resource) error {
	if asset == nil {
		return nil
	}
	loader, ok := am.loaders[assetExtension(asset.FullPath)]
	if !ok {
		return nil
	}
	return loader.Unload(asset)
}

// Resolve maps name to the cleaned absolute path of the asset it refers to.
func (am *AssetManager) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(am.baseDir, name)
}

func (am *AssetManager) count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogError(err.Error())
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if assetType := am.handleFileEvent(e.Name); assetType != metadata.ResourceTypeNone {
					am.notify(e.Name, assetType)
				}
			}
			// Can't stat a deleted directory, so just pretend that it's always a directory and
			// try to remove from the watch list.
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				am.removeAsset(e.Name)
				_ = am.fsnotify.Remove(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) notify(path string, assetType metadata.ResourceType) {
	name, err := filepath.Rel(am.baseDir, path)
	if err != nil {
		name = path
	}
	am.mutex.RLock()
	listeners := append([]FnOnAssetChanged(nil), am.listeners...)
	am.mutex.RUnlock()
	for _, fn := range listeners {
		fn(name, assetType)
	}
}

// watchRecursive indexes every file under path and, when a watcher is
// running, adds all sub-directories to the watch list.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if am.fsnotify == nil {
				return nil
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) metadata.ResourceType {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return assetType
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[filepath.Clean(path)] = AssetInfo{
		Path:       path,
		Type:       assetType,
		LastLoaded: time.Now(),
	}
	return assetType
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, filepath.Clean(path))
}

func assetExtension(path string) string {
	if strings.HasSuffix(path, ".scene.toml") {
		return ".scene.toml"
	}
	return filepath.Ext(path)
}

func determineAssetType(path string) metadata.ResourceType {
	switch assetExtension(path) {
	case ".glb", ".gltf", ".scene.toml":
		return metadata.ResourceTypeScene
	case ".toml":
		return metadata.ResourceTypeConfig
	case ".hdr", ".exr":
		return metadata.ResourceTypeEnvironment
	default:
		return metadata.ResourceTypeNone
	}
}
