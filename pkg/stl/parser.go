package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/cadoverlay/pkg/geometry"
)

// Parse reads an STL file and returns a Model
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read decodes an STL stream, detecting ASCII or binary format from the header
func Read(r io.Reader) (*Model, error) {
	br := bufio.NewReader(r)

	header, err := br.Peek(5)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	if len(header) == 5 && string(header) == "solid" {
		return parseASCII(br)
	}
	return parseBinary(br)
}

func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var normal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				normal = parseVector(fields[2:5])
			}
		case "vertex":
			if len(fields) >= 4 {
				vertices = append(vertices, parseVector(fields[1:4]))
			}
		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(normal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) geometry.Vector3 {
	x, _ := strconv.ParseFloat(fields[0], 64)
	y, _ := strconv.ParseFloat(fields[1], 64)
	z, _ := strconv.ParseFloat(fields[2], 64)
	return geometry.NewVector3(x, y, z)
}

// facet is the on-disk layout of one binary STL triangle
type facet struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = string(bytes.TrimRight(header, "\x00 "))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var f facet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(toVector(f.Normal), toVector(f.V1), toVector(f.V2), toVector(f.V3)))
	}

	return model, nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
