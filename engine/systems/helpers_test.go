package systems

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/spaghettifunk/vitrum/engine/scene"
	"golang.org/x/exp/rand"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// partsGraph builds a root with a non-mesh group holding n mesh parts.
func partsGraph(n int) *scene.Graph {
	root := scene.NewNode(uuid.New(), "Scene")
	group := scene.NewNode(uuid.New(), "Coin")
	root.Add(group)
	for i := 0; i < n; i++ {
		part := scene.NewNode(uuid.New(), fmt.Sprintf("part%d", i))
		part.Geometry = &metadata.Geometry{Name: part.Name, Index: i}
		part.Transform.SetPositionRotationScale(
			math.NewVec3(float32(i), 0, 0),
			math.NewVec3(0, 0.1*float32(i), 0),
			math.NewVec3One(),
		)
		group.Add(part)
	}
	return &scene.Graph{Name: "parts", Root: root}
}

type fakeLoader struct {
	mutex  sync.Mutex
	graphs map[string]*scene.Graph
	loads  int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{graphs: map[string]*scene.Graph{}}
}

func (fl *fakeLoader) set(name string, g *scene.Graph) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.graphs[fl.Resolve(name)] = g
}

func (fl *fakeLoader) count() int {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	return fl.loads
}

func (fl *fakeLoader) LoadAsset(name string, params interface{}) (*metadata.Resource, error) {
	fl.mutex.Lock()
	defer fl.mutex.Unlock()
	fl.loads++
	g, ok := fl.graphs[fl.Resolve(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrAssetNotFound, name)
	}
	if g == nil {
		return &metadata.Resource{Name: name, Data: "not a graph"}, nil
	}
	return &metadata.Resource{Name: name, Type: metadata.ResourceTypeScene, Data: g}, nil
}

func (fl *fakeLoader) UnloadAsset(*metadata.Resource) error {
	return nil
}

// Resolve roots relative names under a fixed assets directory.
func (fl *fakeLoader) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join("/assets", name)
}
