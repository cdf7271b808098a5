// Package grade maps the continuous difficulty scale of a climbing route to a grade
// label and a color band, and holds the route's descriptive information.
package grade

import (
	"errors"
	"fmt"
)

// Difficulty scale bounds. Each band of BandWidth steps covers one grade number.
const (
	MinDifficulty = 0
	MaxDifficulty = 35
	BandWidth     = 9
)

var (
	// ErrInvalidDifficulty is returned for difficulties outside [MinDifficulty, MaxDifficulty]
	ErrInvalidDifficulty = errors.New("difficulty out of range")
	// ErrNoRouteTypeSelected is reported when none of boulder, sport or trad is set
	ErrNoRouteTypeSelected = errors.New("no route type selected")
	// ErrTooManyStartHolds is a warning: the value is accepted anyway
	ErrTooManyStartHolds = errors.New("too many start holds")
	// ErrIncompleteFormBinding is returned when a form does not expose every field
	ErrIncompleteFormBinding = errors.New("incomplete form binding")
)

// Band is one of the four color bands of the difficulty scale
type Band int

const (
	Green Band = iota
	Yellow
	Orange
	Red
)

var bandNames = [...]string{"green", "yellow", "orange", "red"}

var gradeNumbers = [...]string{"5", "6", "7", "8"}

var gradeLetters = [BandWidth]string{"A-", "A", "A+", "B-", "B", "B+", "C-", "C", "C+"}

func (b Band) String() string {
	if b < Green || b > Red {
		return fmt.Sprintf("band(%d)", int(b))
	}
	return bandNames[b]
}

// Bands returns all bands from easiest to hardest
func Bands() []Band {
	return []Band{Green, Yellow, Orange, Red}
}

// ParseBand returns the band with the given name
func ParseBand(name string) (Band, error) {
	for i, n := range bandNames {
		if n == name {
			return Band(i), nil
		}
	}
	return Green, fmt.Errorf("unknown band %q", name)
}

// CheckDifficulty returns ErrInvalidDifficulty when d is outside the scale
func CheckDifficulty(d int) error {
	if d < MinDifficulty || d > MaxDifficulty {
		return fmt.Errorf("%w: %d (must be %d..%d)", ErrInvalidDifficulty, d, MinDifficulty, MaxDifficulty)
	}
	return nil
}

// BandFor returns the color band of a difficulty
func BandFor(d int) (Band, error) {
	if err := CheckDifficulty(d); err != nil {
		return Green, err
	}
	return Band(d / BandWidth), nil
}

// Text returns the grade label of a difficulty, e.g. 17 -> "6C+"
func Text(d int) (string, error) {
	if err := CheckDifficulty(d); err != nil {
		return "", err
	}
	return gradeNumbers[d/BandWidth] + gradeLetters[d%BandWidth], nil
}
