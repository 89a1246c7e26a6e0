package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"trskit/internal/mathutil"
	"trskit/internal/trs"
	"trskit/internal/vec"
)

// Load reads a scene file; the extension selects JSON (.json) or YAML
// (.yaml, .yml).
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	var s *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		s, err = LoadJSON(f)
	case ".yaml", ".yml":
		s, err = LoadYAML(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// LoadJSON loads a scene from a JSON reader.
func LoadJSON(r io.Reader) (*Scene, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("scene: parse json: %w", err)
	}
	return build(f)
}

// LoadYAML loads a scene from a YAML reader.
func LoadYAML(r io.Reader) (*Scene, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scene: parse yaml: %w", err)
	}
	return build(f)
}

func build(f file) (*Scene, error) {
	s := &Scene{
		Name:    f.Name,
		Objects: make([]Object, 0, len(f.Objects)),
		index:   make(map[string]int, len(f.Objects)),
	}

	for i, fo := range f.Objects {
		obj, err := makeObject(fo)
		if err != nil {
			return nil, fmt.Errorf("scene: object %d (%s): %w", i, fo.Name, err)
		}
		if _, dup := s.index[obj.Name]; dup {
			return nil, fmt.Errorf("scene: object %q: %w", obj.Name, ErrDuplicateName)
		}
		s.index[obj.Name] = len(s.Objects)
		s.Objects = append(s.Objects, obj)
	}

	for _, obj := range s.Objects {
		if obj.Parent == "" {
			continue
		}
		if _, ok := s.index[obj.Parent]; !ok {
			return nil, fmt.Errorf("scene: object %q parent %q: %w", obj.Name, obj.Parent, ErrUnknownParent)
		}
	}

	order, err := s.resolveOrder()
	if err != nil {
		return nil, err
	}
	s.order = order
	return s, nil
}

func makeObject(fo fileObject) (Object, error) {
	obj := Object{
		ID:     uuid.NewString(),
		Name:   fo.Name,
		Parent: fo.Parent,
		Color:  DefaultColor,
	}
	if obj.Name == "" {
		obj.Name = obj.ID
	}

	if fo.Color != "" {
		c, ok := colornames.Map[strings.ToLower(fo.Color)]
		if !ok {
			return Object{}, fmt.Errorf("%q: %w", fo.Color, ErrUnknownColor)
		}
		obj.Color = c
	}

	t, err := vector3("translation", fo.Translation)
	if err != nil {
		return Object{}, err
	}
	r, err := rotation(fo)
	if err != nil {
		return Object{}, err
	}
	s, err := scale(fo.Scale)
	if err != nil {
		return Object{}, err
	}
	obj.Transform = trs.New(t, r, s)
	return obj, nil
}

func vector3(field string, vs []float64) (vec.DVec3, error) {
	switch len(vs) {
	case 0:
		return vec.Zero3[float64](), nil
	case 3:
		return vec.New3(vs[0], vs[1], vs[2]), nil
	}
	return vec.DVec3{}, fmt.Errorf("%s has %d values, want 3: %w", field, len(vs), ErrBadLength)
}

func scale(vs []float64) (vec.DVec3, error) {
	switch len(vs) {
	case 0:
		return vec.Splat3[float64](1.0), nil
	case 1:
		return vec.Splat3[float64](vs[0]), nil
	case 3:
		return vec.New3(vs[0], vs[1], vs[2]), nil
	}
	return vec.DVec3{}, fmt.Errorf("scale has %d values, want 1 or 3: %w", len(vs), ErrBadLength)
}

// rotation accepts exactly one of: quaternion, Euler degrees, axis + angle.
func rotation(fo fileObject) (mathutil.DQuat, error) {
	forms := 0
	if len(fo.Rotation) > 0 {
		forms++
	}
	if len(fo.Euler) > 0 {
		forms++
	}
	if len(fo.Axis) > 0 || fo.Angle != nil {
		forms++
	}
	if forms > 1 {
		return mathutil.DQuat{}, ErrRotationConflict
	}

	switch {
	case len(fo.Rotation) > 0:
		q := fo.Rotation
		if len(q) != 4 {
			return mathutil.DQuat{}, fmt.Errorf("rotation has %d values, want 4: %w", len(q), ErrBadLength)
		}
		return mathutil.NewQuat(q[0], q[1], q[2], q[3]), nil
	case len(fo.Euler) > 0:
		e, err := vector3("euler", fo.Euler)
		if err != nil {
			return mathutil.DQuat{}, err
		}
		return mathutil.EulerToQuat(mathutil.Deg2Rad(e.X()), mathutil.Deg2Rad(e.Y()), mathutil.Deg2Rad(e.Z())), nil
	case len(fo.Axis) > 0 || fo.Angle != nil:
		if fo.Angle == nil {
			return mathutil.DQuat{}, fmt.Errorf("axis without angle: %w", ErrRotationConflict)
		}
		if len(fo.Axis) == 0 {
			return mathutil.DQuat{}, fmt.Errorf("angle without axis: %w", ErrRotationConflict)
		}
		a, err := vector3("axis", fo.Axis)
		if err != nil {
			return mathutil.DQuat{}, err
		}
		return mathutil.QuatFromAxisAngle(a.Array(), mathutil.Deg2Rad(*fo.Angle)), nil
	}
	return mathutil.QuatIdentity[float64](), nil
}

// resolveOrder sorts objects so every parent precedes its children.
func (s *Scene) resolveOrder() ([]int, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(s.Objects))
	order := make([]int, 0, len(s.Objects))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("scene: object %q: %w", s.Objects[i].Name, ErrCycle)
		}
		state[i] = visiting
		if p := s.Objects[i].Parent; p != "" {
			if err := visit(s.index[p]); err != nil {
				return err
			}
		}
		state[i] = done
		order = append(order, i)
		return nil
	}

	for i := range s.Objects {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}
