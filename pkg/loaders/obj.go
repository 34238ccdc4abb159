package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/HuynhNguyenPhuc/laurel/log"
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
	"github.com/HuynhNguyenPhuc/laurel/pkg/geometry"
	"github.com/HuynhNguyenPhuc/laurel/pkg/material"
)

// Interleaved floats emitted per triangle vertex: position, texcoord, normal
const floatsPerVertex = 8

// FloatsPerTriangle is the stride of one triangle in the vertex stream
const FloatsPerTriangle = 3 * floatsPerVertex

var logger = log.New("loaders")

// faceIndex holds the 0-based (position, texcoord, normal) indices of one
// face corner; -1 marks an absent index.
type faceIndex struct {
	pos, tex, norm int
}

// objData accumulates the attribute lists while scanning the file
type objData struct {
	vertices  [][3]float32
	texcoords [][2]float32
	normals   [][3]float32
	faces     [][]faceIndex
}

// LoadOBJ parses a wavefront OBJ file into the interleaved vertex stream
// consumed by BuildTriangles: 8 floats per vertex (px,py,pz, u,v, nx,ny,nz),
// 24 per triangle. Polygonal faces are fan-triangulated from the first vertex.
func LoadOBJ(path string) ([]float32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open mesh: %w", err)
	}
	defer file.Close()

	stream, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: parse %s: %w", path, err)
	}

	logger.Infof("loaded %s: %d triangles", path, len(stream)/FloatsPerTriangle)
	return stream, nil
}

// ParseOBJ parses OBJ-format text from the reader
func ParseOBJ(r io.Reader) ([]float32, error) {
	var data objData

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "v":
			err = data.addVertex(fields[1:])
		case "vt":
			err = data.addTexCoord(fields[1:])
		case "vn":
			err = data.addNormal(fields[1:])
		case "f":
			err = data.addFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data.vertexArray()
}

func parseFloats(fields []string, out []float32) error {
	if len(fields) < len(out) {
		return fmt.Errorf("expected %d components, got %d", len(out), len(fields))
	}
	for i := range out {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return err
		}
		out[i] = float32(v)
	}
	return nil
}

func (d *objData) addVertex(fields []string) error {
	var v [3]float32
	if err := parseFloats(fields, v[:]); err != nil {
		return err
	}
	d.vertices = append(d.vertices, v)
	return nil
}

func (d *objData) addTexCoord(fields []string) error {
	var vt [2]float32
	if err := parseFloats(fields, vt[:]); err != nil {
		return err
	}
	d.texcoords = append(d.texcoords, vt)
	return nil
}

func (d *objData) addNormal(fields []string) error {
	var vn [3]float32
	if err := parseFloats(fields, vn[:]); err != nil {
		return err
	}
	d.normals = append(d.normals, vn)
	return nil
}

// addFace decomposes each whitespace-separated corner on "/" into 1-based
// (pos, tex, normal) indices. The middle index may be empty ("v//vn").
func (d *objData) addFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face with %d vertices", len(fields))
	}

	face := make([]faceIndex, 0, len(fields))
	for _, part := range fields {
		idx := faceIndex{pos: -1, tex: -1, norm: -1}
		for i, segment := range strings.SplitN(part, "/", 3) {
			if segment == "" {
				continue
			}
			n, err := strconv.Atoi(segment)
			if err != nil {
				return fmt.Errorf("face index %q: %w", part, err)
			}
			switch i {
			case 0:
				idx.pos = n - 1
			case 1:
				idx.tex = n - 1
			case 2:
				idx.norm = n - 1
			}
		}
		if idx.pos < 0 || idx.pos >= len(d.vertices) {
			return fmt.Errorf("vertex index %d out of range", idx.pos+1)
		}
		face = append(face, idx)
	}
	d.faces = append(d.faces, face)
	return nil
}

// vertexArray emits the interleaved stream, triangulating each polygon as a
// fan rooted at its first vertex: (v0, v[i], v[i+1]) for i in 1..n-2.
func (d *objData) vertexArray() ([]float32, error) {
	var stream []float32

	emit := func(idx faceIndex) error {
		stream = append(stream, d.vertices[idx.pos][:]...)

		if idx.tex >= 0 {
			if idx.tex >= len(d.texcoords) {
				return fmt.Errorf("texcoord index %d out of range", idx.tex+1)
			}
			stream = append(stream, d.texcoords[idx.tex][:]...)
		} else {
			stream = append(stream, 0, 0)
		}

		if idx.norm >= 0 {
			if idx.norm >= len(d.normals) {
				return fmt.Errorf("normal index %d out of range", idx.norm+1)
			}
			stream = append(stream, d.normals[idx.norm][:]...)
		} else {
			stream = append(stream, 0, 0, 0)
		}
		return nil
	}

	for _, face := range d.faces {
		for i := 1; i < len(face)-1; i++ {
			for _, idx := range []faceIndex{face[0], face[i], face[i+1]} {
				if err := emit(idx); err != nil {
					return nil, err
				}
			}
		}
	}
	return stream, nil
}

// BuildTriangles converts the interleaved vertex stream into mesh triangles
// sharing the given material
func BuildTriangles(stream []float32, mat *material.Material) []*geometry.Triangle {
	triangles := make([]*geometry.Triangle, 0, len(stream)/FloatsPerTriangle)
	for i := 0; i+FloatsPerTriangle <= len(stream); i += FloatsPerTriangle {
		v := stream[i : i+FloatsPerTriangle]
		triangles = append(triangles, geometry.NewMeshTriangle(
			core.NewVec3(v[0], v[1], v[2]),
			core.NewVec3(v[8], v[9], v[10]),
			core.NewVec3(v[16], v[17], v[18]),
			core.NewVec3(v[5], v[6], v[7]),
			core.NewVec3(v[13], v[14], v[15]),
			core.NewVec3(v[21], v[22], v[23]),
			core.NewVec2(v[3], v[4]),
			core.NewVec2(v[11], v[12]),
			core.NewVec2(v[19], v[20]),
			mat,
		))
	}
	return triangles
}
