package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	GroundFile = "ground.yaml"
	ActorFile  = "actor.yaml"
	CameraFile = "camera.yaml"
	TargetFile = "target.yaml"
	TreesFile  = "trees.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GroundSpec struct {
	Name  string    `yaml:"name"`
	Width float64   `yaml:"width"`
	Depth float64   `yaml:"depth"`
	Tiles int       `yaml:"tiles"`
	Color YAMLColor `yaml:"color"`
}

func LoadGroundSpec() (*GroundSpec, error) {
	spec, err := LoadSpec[GroundSpec](GroundFile)
	if err != nil {
		return nil, err
	}
	if spec.Width <= 0 || spec.Depth <= 0 {
		return nil, fmt.Errorf("prefabs: %s: ground needs a positive width and depth", GroundFile)
	}
	return &spec, nil
}

type ActorSpec struct {
	Name           string        `yaml:"name"`
	Speed          float64       `yaml:"speed"`
	ArrivalEpsilon float64       `yaml:"arrival_epsilon"`
	Stop           string        `yaml:"stop"`
	Transform      TransformSpec `yaml:"transform"`
	Size           VecSpec       `yaml:"size"`
	Color          YAMLColor     `yaml:"color"`
	Animation      AnimationSpec `yaml:"animation"`
}

func LoadActorSpec() (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](ActorFile)
	if err != nil {
		return nil, err
	}
	if len(spec.Animation.Clips) == 0 {
		return nil, fmt.Errorf("prefabs: %s: actor has no animation clips", ActorFile)
	}
	return &spec, nil
}

type CameraSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	FOV       float64       `yaml:"fov"`
	PanSpeed  float64       `yaml:"pan_speed"`
	AxisMode  string        `yaml:"axis_mode"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TargetSpec struct {
	Name  string    `yaml:"name"`
	Size  float64   `yaml:"size"`
	Color YAMLColor `yaml:"color"`
}

func LoadTargetSpec() (*TargetSpec, error) {
	spec, err := LoadSpec[TargetSpec](TargetFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TreesSpec struct {
	Name      string    `yaml:"name"`
	Script    string    `yaml:"script"`
	Count     int       `yaml:"count"`
	Seed      int       `yaml:"seed"`
	Clearance float64   `yaml:"clearance"`
	Radius    float64   `yaml:"radius"`
	Color     YAMLColor `yaml:"color"`
}

func LoadTreesSpec() (*TreesSpec, error) {
	spec, err := LoadSpec[TreesSpec](TreesFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type AnimationSpec struct {
	Initial string     `yaml:"initial"`
	Clips   []ClipSpec `yaml:"clips"`
}

type ClipSpec struct {
	Name   string  `yaml:"name"`
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.RGBA = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
