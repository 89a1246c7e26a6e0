// Package scene loads named TRS objects from JSON or YAML and resolves them
// to world matrices through their parent links.
package scene

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/color"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"trskit/internal/trs"
)

var (
	ErrBadLength        = errors.New("scene: wrong number of components")
	ErrDuplicateName    = errors.New("scene: duplicate object name")
	ErrUnknownParent    = errors.New("scene: unknown parent")
	ErrCycle            = errors.New("scene: parent cycle")
	ErrRotationConflict = errors.New("scene: conflicting rotation forms")
	ErrUnknownColor     = errors.New("scene: unknown color name")
	ErrUnknownFormat    = errors.New("scene: unknown file format")
)

// DefaultColor is used for objects that name no color.
var DefaultColor = colornames.Silver

// Object is one placed item of a scene.
type Object struct {
	ID     string
	Name   string
	Parent string // "" = root
	Color  color.RGBA

	// Transform is local to the parent.
	Transform trs.DTrs
}

// Scene holds objects in file order.
type Scene struct {
	Name    string
	Objects []Object

	index map[string]int
	order []int // parents before children
}

// Lookup returns the object with the given name.
func (s *Scene) Lookup(name string) (*Object, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.Objects[i], true
}

// file mirrors the on-disk schema shared by JSON and YAML.
type file struct {
	Name    string       `json:"name" yaml:"name"`
	Objects []fileObject `json:"objects" yaml:"objects"`
}

type fileObject struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`

	Translation []float64 `json:"translation,omitempty" yaml:"translation,omitempty"`
	Rotation    []float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"` // quaternion x y z w
	Euler       []float64 `json:"euler,omitempty" yaml:"euler,omitempty"`       // degrees, XYZ
	Axis        []float64 `json:"axis,omitempty" yaml:"axis,omitempty"`
	Angle       *float64  `json:"angle,omitempty" yaml:"angle,omitempty"` // degrees
	Scale       floats    `json:"scale,omitempty" yaml:"scale,omitempty"` // 1 value = uniform
}

// floats decodes either a sequence of numbers or one bare number.
type floats []float64

func (f *floats) UnmarshalYAML(n *yaml.Node) error {
	switch {
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
		*f = nil
		return nil
	case n.Kind == yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		*f = floats{v}
		return nil
	}
	var vs []float64
	if err := n.Decode(&vs); err != nil {
		return err
	}
	*f = vs
	return nil
}

func (f *floats) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = nil
		return nil
	}
	if len(data) > 0 && data[0] != '[' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = floats{v}
		return nil
	}
	var vs []float64
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	*f = vs
	return nil
}
