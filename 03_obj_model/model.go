package main

import (
	"embed"

	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed meshes
var meshes embed.FS

type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

type Model struct {
	Vertices []Vertex
	Color    mgl32.Vec3
}

var defaultColor = mgl32.Vec3{0.8, 0.8, 0.8}

func position(decoder *obj.Decoder, index int) mgl32.Vec3 {
	return mgl32.Vec3{
		decoder.Vertices[index*3],
		decoder.Vertices[index*3+1],
		decoder.Vertices[index*3+2],
	}
}

// LoadModel decodes an embedded obj/mtl pair into a flat-shaded triangle list.
func LoadModel(meshPath, materialPath string) (*Model, error) {
	meshFile, err := meshes.Open(meshPath)
	if err != nil {
		return nil, errors.Wrapf(err, "open mesh %s", meshPath)
	}
	defer meshFile.Close()

	matFile, err := meshes.Open(materialPath)
	if err != nil {
		return nil, errors.Wrapf(err, "open material %s", materialPath)
	}
	defer matFile.Close()

	decoder, err := obj.DecodeReader(meshFile, matFile)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", meshPath)
	}

	model := &Model{Color: defaultColor}
	for _, decodedObj := range decoder.Objects {
		for _, face := range decodedObj.Faces {
			if material, ok := decoder.Materials[face.Material]; ok {
				model.Color = mgl32.Vec3{material.Diffuse.R, material.Diffuse.G, material.Diffuse.B}
			}

			// Fan out polygons into triangles around the first corner.
			for i := 2; i < len(face.Vertices); i++ {
				model.addTriangle(
					position(decoder, face.Vertices[0]),
					position(decoder, face.Vertices[i-1]),
					position(decoder, face.Vertices[i]),
				)
			}
		}
	}

	if len(model.Vertices) == 0 {
		return nil, errors.Newf("%s has no faces", meshPath)
	}
	return model, nil
}

func (m *Model) addTriangle(a, b, c mgl32.Vec3) {
	normal := b.Sub(a).Cross(c.Sub(a))
	if normal.Len() > 0 {
		normal = normal.Normalize()
	}

	m.Vertices = append(m.Vertices,
		Vertex{Position: a, Normal: normal},
		Vertex{Position: b, Normal: normal},
		Vertex{Position: c, Normal: normal},
	)
}
