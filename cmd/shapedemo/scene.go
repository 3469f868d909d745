package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a list of shapes drawn in order onto one surface.
type Scene struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Background string  `yaml:"background" toml:"background"`
	Shapes     []Shape `yaml:"shapes" toml:"shapes"`
}

// Shape describes one builder invocation. Which fields apply depends on
// Kind.
type Shape struct {
	Kind string `yaml:"kind" toml:"kind"`
	Mode string `yaml:"mode" toml:"mode"`

	Position []float64   `yaml:"position" toml:"position"`
	Size     []float64   `yaml:"size" toml:"size"`
	Radius   []float64   `yaml:"radius" toml:"radius"`
	Angle    []float64   `yaml:"angle" toml:"angle"`
	Sides    int         `yaml:"sides" toml:"sides"`
	Points   int         `yaml:"points" toml:"points"`
	Height   float64     `yaml:"height" toml:"height"`
	Widths   []float64   `yaml:"widths" toml:"widths"`
	Vertices [][]float64 `yaml:"vertices" toml:"vertices"`
	Marks    [][]float64 `yaml:"marks" toml:"marks"`
	Start    []float64   `yaml:"start" toml:"start"`
	Controls [][]float64 `yaml:"controls" toml:"controls"`
	End      []float64   `yaml:"end" toml:"end"`
	To       []float64   `yaml:"to" toml:"to"`

	Anticlockwise bool    `yaml:"anticlockwise" toml:"anticlockwise"`
	Step          float64 `yaml:"step" toml:"step"`
	Closed        bool    `yaml:"closed" toml:"closed"`

	Text string    `yaml:"text" toml:"text"`
	Font *FontSpec `yaml:"font" toml:"font"`
	Src  string    `yaml:"src" toml:"src"`

	Color   string      `yaml:"color" toml:"color"`
	Border  *BorderSpec `yaml:"border" toml:"border"`
	Shadow  *ShadowSpec `yaml:"shadow" toml:"shadow"`
	Compose string      `yaml:"compose" toml:"compose"`
	Dash    []float64   `yaml:"dash" toml:"dash"`
	Cap     string      `yaml:"cap" toml:"cap"`
	Join    string      `yaml:"join" toml:"join"`
}

// FontSpec configures a text shape.
type FontSpec struct {
	Family   string  `yaml:"family" toml:"family"`
	Size     float64 `yaml:"size" toml:"size"`
	Weight   int     `yaml:"weight" toml:"weight"`
	Style    string  `yaml:"style" toml:"style"`
	Variant  string  `yaml:"variant" toml:"variant"`
	Align    string  `yaml:"align" toml:"align"`
	Baseline string  `yaml:"baseline" toml:"baseline"`
	Lang     string  `yaml:"lang" toml:"lang"`
}

// BorderSpec is the stroke paint and width.
type BorderSpec struct {
	Width float64 `yaml:"width" toml:"width"`
	Color string  `yaml:"color" toml:"color"`
}

// ShadowSpec is a drop shadow.
type ShadowSpec struct {
	Blur    float64 `yaml:"blur" toml:"blur"`
	OffsetX float64 `yaml:"x" toml:"x"`
	OffsetY float64 `yaml:"y" toml:"y"`
	Color   string  `yaml:"color" toml:"color"`
}

// ErrSceneFormat is returned for scene files that are neither YAML nor TOML.
var ErrSceneFormat = errors.New("shapedemo: scene must be .yaml, .yml or .toml")

// LoadScene reads a scene, choosing the decoder by file extension.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data, strings.ToLower(filepath.Ext(path)))
}

// ParseScene decodes a scene in the format named by ext.
func ParseScene(data []byte, ext string) (*Scene, error) {
	var sc Scene
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("shapedemo: yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sc); err != nil {
			return nil, fmt.Errorf("shapedemo: toml: %w", err)
		}
	default:
		return nil, ErrSceneFormat
	}
	return &sc, nil
}
