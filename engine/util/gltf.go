package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LineStrip is one polyline of a debug scene.
type LineStrip struct {
	Name   string
	Points []mgl32.Vec3
	Color  mgl32.Vec4
	Closed bool
}

// CirclePoints approximates a ground ring around center.
func CirclePoints(center mgl32.Vec3, radius float32, segments int) []mgl32.Vec3 {
	if segments < 3 {
		segments = 3
	}
	points := make([]mgl32.Vec3, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = center.Add(mgl32.Vec3{radius * float32(math.Cos(angle)), 0, radius * float32(math.Sin(angle))})
	}
	return points
}

// BuildLineStripDocument converts line strips into a glTF scene, one node per strip.
// Strips with fewer than two points are skipped.
func BuildLineStripDocument(strips []LineStrip) *gltf.Document {
	doc := gltf.NewDocument()
	for _, strip := range strips {
		if len(strip.Points) < 2 {
			continue
		}
		positions := make([][3]float32, len(strip.Points))
		for i, p := range strip.Points {
			positions[i] = [3]float32{p.X(), p.Y(), p.Z()}
		}
		positionAccessor := modeler.WritePosition(doc, positions)

		color := [4]float32{strip.Color.X(), strip.Color.Y(), strip.Color.Z(), strip.Color.W()}
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:                 strip.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: &color},
		})
		materialIndex := uint32(len(doc.Materials) - 1)

		mode := gltf.PrimitiveLineStrip
		if strip.Closed {
			mode = gltf.PrimitiveLineLoop
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: strip.Name,
			Primitives: []*gltf.Primitive{{
				Mode:       mode,
				Attributes: map[string]uint32{gltf.POSITION: positionAccessor},
				Material:   gltf.Index(materialIndex),
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: strip.Name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// ExportLineStrips writes the strips as a binary glTF file for inspection in a model viewer.
func ExportLineStrips(filename string, strips []LineStrip) error {
	doc := BuildLineStripDocument(strips)
	if err := gltf.SaveBinary(doc, filename); err != nil {
		return errors.Wrapf(err, "exporting line strips to %s", filename)
	}
	LogIOInfo("[ExportLineStrips] wrote %d strips to %s", len(doc.Meshes), filename)
	return nil
}
