package loaders

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/math"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/spaghettifunk/vitrum/engine/scene"
)

// GLTFLoader reads the node hierarchy of a .glb/.gltf file. Vertex data is
// left to the renderer; nodes only carry a geometry reference to their mesh.
type GLTFLoader struct{}

func (gl *GLTFLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gltf %s: %w", path, err)
	}
	graph, err := buildGLTFGraph(path, doc)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Name:     graph.Name,
		FullPath: path,
		Type:     metadata.ResourceTypeScene,
		DataSize: uint64(len(doc.Nodes)),
		Data:     graph,
	}, nil
}

func buildGLTFGraph(path string, doc *gltf.Document) (*scene.Graph, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	root := scene.NewNode(core.IdentifierAcquire(), name)
	graph := &scene.Graph{Name: name, Source: path, Root: root}

	if len(doc.Scenes) == 0 {
		return graph, nil
	}
	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = int(*doc.Scene)
	}
	if sceneIndex >= len(doc.Scenes) {
		return nil, fmt.Errorf("gltf %s: default scene %d out of range", path, sceneIndex)
	}
	if doc.Scenes[sceneIndex].Name != "" {
		root.Name = doc.Scenes[sceneIndex].Name
	}

	visited := make(map[uint32]bool, len(doc.Nodes))
	for _, idx := range doc.Scenes[sceneIndex].Nodes {
		child, err := buildGLTFNode(path, doc, idx, visited)
		if err != nil {
			return nil, err
		}
		root.Add(child)
	}
	return graph, nil
}

func buildGLTFNode(path string, doc *gltf.Document, idx uint32, visited map[uint32]bool) (*scene.Node, error) {
	if int(idx) >= len(doc.Nodes) {
		return nil, fmt.Errorf("gltf %s: node index %d out of range", path, idx)
	}
	if visited[idx] {
		return nil, fmt.Errorf("gltf %s: node %d referenced twice", path, idx)
	}
	visited[idx] = true

	gn := doc.Nodes[idx]
	node := scene.NewNode(core.IdentifierAcquire(), gn.Name)

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault()
	s := gn.ScaleOrDefault()
	rotation := math.Quaternion{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])}
	node.Transform.SetPositionRotationScale(
		math.NewVec3(float32(t[0]), float32(t[1]), float32(t[2])),
		rotation.ToEulerXYZ(),
		math.NewVec3(float32(s[0]), float32(s[1]), float32(s[2])),
	)

	if gn.Mesh != nil {
		meshIndex := int(*gn.Mesh)
		meshName := gn.Name
		if meshIndex < len(doc.Meshes) && doc.Meshes[meshIndex].Name != "" {
			meshName = doc.Meshes[meshIndex].Name
		}
		node.Geometry = &metadata.Geometry{
			Name:   meshName,
			Index:  meshIndex,
			Source: path,
		}
	}
	for _, childIdx := range gn.Children {
		child, err := buildGLTFNode(path, doc, childIdx, visited)
		if err != nil {
			return nil, err
		}
		node.Add(child)
	}
	return node, nil
}

func (gl *GLTFLoader) Unload(*metadata.Resource) error {
	return nil
}
