// Package script reads tap scripts: recorded sequences of taps, drags and route info
// edits that can be replayed without a camera.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"gopkg.in/yaml.v3"
)

// Vec is a position written as [x, y, z]
type Vec [3]float64

// Vector3 converts the position
func (v Vec) Vector3() geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// Tap places a clip on a surface
type Tap struct {
	At      Vec    `yaml:"at"`
	Surface string `yaml:"surface,omitempty"`
}

// Drag moves a waypoint of the active route and keeps it transforming
type Drag struct {
	Index int `yaml:"index"`
	To    Vec `yaml:"to"`
}

// Info replaces the route information of the active route
type Info struct {
	Name       string `yaml:"name"`
	Difficulty int    `yaml:"difficulty"`
	Type       string `yaml:"type"`
	SitStart   bool   `yaml:"sitstart"`
	StartHolds *int   `yaml:"startholds"`
	TopOut     bool   `yaml:"topout"`
	Notes      string `yaml:"notes"`
}

// Values converts the step into grade values. Start holds default to current.
func (i Info) Values(current grade.Values) (grade.Values, error) {
	t, err := grade.ParseRouteType(i.Type)
	if err != nil {
		return current, err
	}

	v := grade.Values{
		Name:       i.Name,
		Difficulty: i.Difficulty,
		SitStart:   i.SitStart,
		StartHolds: current.StartHolds,
		TopOut:     i.TopOut,
		Notes:      i.Notes,
	}
	v.SetType(t)
	if i.StartHolds != nil {
		v.StartHolds = *i.StartHolds
	}

	return v, nil
}

// Step is one action. Exactly one field is set.
type Step struct {
	Tap      *Tap  `yaml:"tap,omitempty"`
	Select   *int  `yaml:"select,omitempty"`
	Drag     *Drag `yaml:"drag,omitempty"`
	Release  bool  `yaml:"release,omitempty"`
	Deselect bool  `yaml:"deselect,omitempty"`
	Tick     int   `yaml:"tick,omitempty"`
	Info     *Info `yaml:"info,omitempty"`
	NewRoute bool  `yaml:"newRoute,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Tap != nil, s.Select != nil, s.Drag != nil, s.Release,
		s.Deselect, s.Tick > 0, s.Info != nil, s.NewRoute,
	} {
		if set {
			n++
		}
	}
	return n
}

// Script is a named list of steps
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// ErrInvalidStep is returned for steps with no or several actions
var ErrInvalidStep = errors.New("invalid step")

// Parse reads a script file
func Parse(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a script from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}

	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			return nil, fmt.Errorf("%w: step %d has %d actions", ErrInvalidStep, i+1, n)
		}
	}

	return &s, nil
}
