package grade

import (
	"fmt"
	"image/color"
	"strings"
)

// PlaceholderName is shown for routes saved without a name
const PlaceholderName = "Nameless Route"

// MaxStartHolds is the largest start hold count accepted without a warning
const MaxStartHolds = 2

// RouteType is the discipline of a route
type RouteType int

const (
	TypeNone RouteType = iota
	Boulder
	Sport
	Trad
)

func (t RouteType) String() string {
	switch t {
	case Boulder:
		return "Boulder"
	case Sport:
		return "Sport"
	case Trad:
		return "Trad"
	default:
		return ""
	}
}

// ParseRouteType accepts "boulder", "sport", "trad" or "" (none)
func ParseRouteType(s string) (RouteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TypeNone, nil
	case "boulder":
		return Boulder, nil
	case "sport":
		return Sport, nil
	case "trad":
		return Trad, nil
	default:
		return TypeNone, fmt.Errorf("unknown route type %q", s)
	}
}

// Values is a complete set of route information, used for bulk updates
type Values struct {
	Name       string
	Difficulty int
	Boulder    bool
	Sport      bool
	Trad       bool
	SitStart   bool
	StartHolds int
	TopOut     bool
	Notes      string
}

// SetType sets exactly one of the type flags, or clears them all for TypeNone
func (v *Values) SetType(t RouteType) {
	v.Boulder = t == Boulder
	v.Sport = t == Sport
	v.Trad = t == Trad
}

// Info is the descriptive information of a route. Its difficulty drives the route color.
type Info struct {
	v Values
}

// NewInfo returns the information a new route starts with
func NewInfo() *Info {
	return &Info{v: Values{
		Difficulty: 10,
		Boulder:    true,
		StartHolds: 1,
	}}
}

// NewInfoFrom returns information holding v, e.g. when loading a stored route
func NewInfoFrom(v Values) (*Info, error) {
	i := NewInfo()
	if _, err := i.Update(v); err != nil {
		return nil, err
	}
	return i, nil
}

// Clone returns an independent copy
func (i *Info) Clone() *Info {
	c := *i
	return &c
}

// Values returns a copy of the current values
func (i *Info) Values() Values {
	return i.v
}

func (i *Info) Name() string { return i.v.Name }

func (i *Info) Difficulty() int { return i.v.Difficulty }

func (i *Info) Notes() string { return i.v.Notes }

func (i *Info) StartHolds() int { return i.v.StartHolds }

// DisplayName returns the name, or the placeholder when it is empty
func (i *Info) DisplayName() string {
	if i.v.Name == "" {
		return PlaceholderName
	}
	return i.v.Name
}

// Type resolves the type flags in the order boulder, sport, trad
func (i *Info) Type() RouteType {
	switch {
	case i.v.Boulder:
		return Boulder
	case i.v.Sport:
		return Sport
	case i.v.Trad:
		return Trad
	default:
		return TypeNone
	}
}

// Band returns the color band of the current difficulty
func (i *Info) Band() Band {
	// Difficulty is validated on every update
	b, _ := BandFor(i.v.Difficulty)
	return b
}

// Text returns the grade label of the current difficulty
func (i *Info) Text() string {
	s, _ := Text(i.v.Difficulty)
	return s
}

// Color returns the route color for the current difficulty
func (i *Info) Color(p Palette) color.RGBA {
	return p.Color(i.Band())
}

// Validation is the outcome of checking route information.
// Err blocks saving; Warnings are informational only.
type Validation struct {
	Err      error
	Warnings []error
}

// OK reports whether the information can be saved
func (v Validation) OK() bool {
	return v.Err == nil
}

// Validate checks the information the way a save does. An empty name is replaced by
// the placeholder instead of failing. Too many start holds only produce a warning.
func (i *Info) Validate() Validation {
	var res Validation

	if !i.v.Boulder && !i.v.Sport && !i.v.Trad {
		res.Err = ErrNoRouteTypeSelected
	}
	if i.v.StartHolds > MaxStartHolds {
		res.Warnings = append(res.Warnings,
			fmt.Errorf("%w: %d (max %d)", ErrTooManyStartHolds, i.v.StartHolds, MaxStartHolds))
	}
	if i.v.Name == "" {
		i.v.Name = PlaceholderName
	}

	return res
}

// Update replaces all values at once. An invalid difficulty rejects the whole update
// and leaves the information unchanged; otherwise the values are applied and validated.
func (i *Info) Update(v Values) (Validation, error) {
	if err := CheckDifficulty(v.Difficulty); err != nil {
		return Validation{}, err
	}
	if v.StartHolds < 0 {
		return Validation{}, fmt.Errorf("start holds must not be negative: %d", v.StartHolds)
	}

	i.v = v
	return i.Validate(), nil
}

// Card is the information shown on the card attached to a route's start
type Card struct {
	Name       string
	Grade      string
	Band       Band
	Type       string
	SitStart   bool
	StartHolds int
	TopOut     bool
	Notes      string
}

// Card returns the display projection of the information
func (i *Info) Card() Card {
	return Card{
		Name:       i.DisplayName(),
		Grade:      i.Text(),
		Band:       i.Band(),
		Type:       i.Type().String(),
		SitStart:   i.v.SitStart,
		StartHolds: i.v.StartHolds,
		TopOut:     i.v.TopOut,
		Notes:      i.v.Notes,
	}
}

func (c Card) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s (%s)", c.Name, c.Grade, c.Band)
	if c.Type != "" {
		fmt.Fprintf(&b, "  %s", c.Type)
	}
	b.WriteString("\n")

	var marks []string
	if c.SitStart {
		marks = append(marks, "sit start")
	}
	if c.StartHolds > 0 {
		marks = append(marks, fmt.Sprintf("%d start hold(s)", c.StartHolds))
	}
	if c.TopOut {
		marks = append(marks, "top out")
	}
	if len(marks) > 0 {
		fmt.Fprintf(&b, "%s\n", strings.Join(marks, ", "))
	}
	if c.Notes != "" {
		fmt.Fprintf(&b, "%s\n", c.Notes)
	}

	return b.String()
}
