package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/spaghettifunk/vitrum/engine/scene"
)

// SceneLoader reads the TOML scene description format:
//
//	name = "coin"
//	[root]
//	name = "Scene"
//	[[root.children]]
//	name = "rim"
//	mesh = "rim"
//	position = [0.0, 0.0, 0.0]
//	rotation = [0.0, 0.0, 0.0] # XYZ Euler radians
//	scale = [1.0, 1.0, 1.0]
//
// A node is renderable when it names a mesh.
type SceneLoader struct{}

type sceneFile struct {
	Name string   `toml:"name"`
	Root nodeFile `toml:"root"`
}

type nodeFile struct {
	ID       string      `toml:"id"`
	Name     string      `toml:"name"`
	Mesh     string      `toml:"mesh"`
	Position *[3]float32 `toml:"position"`
	Rotation *[3]float32 `toml:"rotation"`
	Scale    *[3]float32 `toml:"scale"`
	Children []nodeFile  `toml:"children"`
}

func (sl *SceneLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	graph, err := parseSceneFile(path, data)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Name:     graph.Name,
		FullPath: path,
		Type:     metadata.ResourceTypeScene,
		DataSize: uint64(len(data)),
		Data:     graph,
	}, nil
}

func parseSceneFile(path string, data []byte) (*scene.Graph, error) {
	var sf sceneFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	if sf.Name == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), ".scene.toml")
	}
	root, err := buildNode(path, &sf.Root)
	if err != nil {
		return nil, err
	}
	return &scene.Graph{
		Name:   sf.Name,
		Source: path,
		Root:   root,
	}, nil
}

func buildNode(path string, nf *nodeFile) (*scene.Node, error) {
	id, err := core.IdentifierParse(nf.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q on node %q: %w", nf.ID, nf.Name, err)
	}
	node := scene.NewNode(id, nf.Name)

	position, rotation, scale := math.NewVec3Zero(), math.NewVec3Zero(), math.NewVec3One()
	if nf.Position != nil {
		position = vec3(*nf.Position)
	}
	if nf.Rotation != nil {
		rotation = vec3(*nf.Rotation)
	}
	if nf.Scale != nil {
		scale = vec3(*nf.Scale)
	}
	node.Transform.SetPositionRotationScale(position, rotation, scale)

	if nf.Mesh != "" {
		node.Geometry = &metadata.Geometry{
			Name:   nf.Mesh,
			Index:  -1,
			Source: path,
		}
	}
	for i := range nf.Children {
		child, err := buildNode(path, &nf.Children[i])
		if err != nil {
			return nil, err
		}
		node.Add(child)
	}
	return node, nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

func (sl *SceneLoader) Unload(*metadata.Resource) error {
	return nil
}
