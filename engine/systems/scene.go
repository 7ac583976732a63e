package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/spaghettifunk/vitrum/engine/scene"
)

// AssetLoader is the part of the asset manager the scene system needs.
type AssetLoader interface {
	LoadAsset(name string, params interface{}) (*metadata.Resource, error)
	UnloadAsset(asset *metadata.Resource) error
	Resolve(name string) string
}

// SceneResult is a finished load handed from the job system to the frame loop.
type SceneResult struct {
	Name  string
	Graph *scene.Graph
	Err   error
}

// SceneSystem loads scene graphs off the frame thread. Results are picked
// up by Poll, so only the frame loop ever touches the instances built from
// them. Only the newest result per scene is kept until then.
type SceneSystem struct {
	loader AssetLoader
	jobs   *JobSystem

	mutex   sync.Mutex
	current string
	pending []SceneResult
}

func NewSceneSystem(loader AssetLoader, jobs *JobSystem) (*SceneSystem, error) {
	if loader == nil || jobs == nil {
		return nil, fmt.Errorf("%w: scene system needs an asset loader and a job system", core.ErrNotInitialized)
	}
	return &SceneSystem{
		loader: loader,
		jobs:   jobs,
	}, nil
}

// Load requests name to be loaded in the background. It becomes the scene
// reloaded on asset changes.
func (ss *SceneSystem) Load(name string) {
	ss.mutex.Lock()
	ss.current = name
	ss.mutex.Unlock()

	err := ss.jobs.Submit(metadata.JobTask{
		Name: "load scene " + name,
		OnStart: func() (interface{}, error) {
			res, err := ss.loader.LoadAsset(name, nil)
			if err != nil {
				return nil, err
			}
			defer ss.loader.UnloadAsset(res)
			graph, ok := res.Data.(*scene.Graph)
			if !ok {
				return nil, fmt.Errorf("%w: %s is not a scene", core.ErrUnknownAssetType, name)
			}
			return graph, nil
		},
		OnComplete: func(result interface{}) {
			ss.publish(SceneResult{Name: name, Graph: result.(*scene.Graph)})
		},
		OnFailure: func(err error) {
			ss.publish(SceneResult{Name: name, Err: err})
		},
	})
	if err != nil {
		core.LogWarn("Scene %s not loaded: %s", name, err)
	}
}

// publish stores r, replacing an unpolled result for the same scene.
func (ss *SceneSystem) publish(r SceneResult) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()
	for i := range ss.pending {
		if ss.pending[i].Name == r.Name {
			ss.pending = append(ss.pending[:i], ss.pending[i+1:]...)
			break
		}
	}
	ss.pending = append(ss.pending, r)
}

// Current is the name of the last requested scene.
func (ss *SceneSystem) Current() string {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()
	return ss.current
}

// Poll takes the finished loads without blocking and returns them oldest first.
func (ss *SceneSystem) Poll() []SceneResult {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()
	out := ss.pending
	ss.pending = nil
	return out
}

// OnAssetChanged reloads the current scene when its file is rewritten.
// Names are compared after the loader resolves them to asset paths.
func (ss *SceneSystem) OnAssetChanged(name string, assetType metadata.ResourceType) {
	current := ss.Current()
	if assetType != metadata.ResourceTypeScene || current == "" {
		return
	}
	if ss.loader.Resolve(name) != ss.loader.Resolve(current) {
		return
	}
	core.LogInfo("Scene %s changed on disk, reloading.", current)
	ss.Load(current)
}
