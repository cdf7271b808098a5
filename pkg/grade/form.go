package grade

import (
	"fmt"
	"strings"
)

// Field identifies one of the bound inputs of a route information form
type Field int

const (
	FieldName Field = iota
	FieldDifficulty
	FieldBoulder
	FieldSport
	FieldTrad
	FieldSitStart
	FieldTopOut
	FieldNotes
)

// Fields lists every field a form has to bind
var Fields = [...]Field{
	FieldName,
	FieldDifficulty,
	FieldBoulder,
	FieldSport,
	FieldTrad,
	FieldSitStart,
	FieldTopOut,
	FieldNotes,
}

var fieldNames = [...]string{"name", "difficulty", "boulder", "sport", "trad", "sitstart", "topout", "notes"}

func (f Field) String() string {
	if f < FieldName || f > FieldNotes {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Form gives typed access to the inputs bound to route information.
// The getters and setters return false when the field is not bound or has another kind.
type Form interface {
	Has(f Field) bool
	Text(f Field) (string, bool)
	Number(f Field) (int, bool)
	Checked(f Field) (bool, bool)
	SetText(f Field, s string) bool
	SetNumber(f Field, n int) bool
	SetChecked(f Field, on bool) bool
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindNumber
	kindChecked
)

var fieldKinds = [...]fieldKind{kindText, kindNumber, kindChecked, kindChecked, kindChecked, kindChecked, kindChecked, kindText}

func hasKind(form Form, f Field) bool {
	var ok bool
	switch fieldKinds[f] {
	case kindText:
		_, ok = form.Text(f)
	case kindNumber:
		_, ok = form.Number(f)
	default:
		_, ok = form.Checked(f)
	}
	return ok
}

// checkBinding reports missing fields first, then the first field bound with the wrong kind
func checkBinding(form Form) error {
	var missing []string
	for _, f := range Fields {
		if !form.Has(f) {
			missing = append(missing, f.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteFormBinding, strings.Join(missing, ", "))
	}
	for _, f := range Fields {
		if !hasKind(form, f) {
			return fmt.Errorf("%w: %s has the wrong kind", ErrIncompleteFormBinding, f)
		}
	}
	return nil
}

// ReadForm reads all fields of a form. Values the form does not carry, such as the
// start hold count, are taken from current. A form that does not bind every field
// with the right kind is rejected as a whole.
func ReadForm(form Form, current Values) (Values, error) {
	if err := checkBinding(form); err != nil {
		return current, err
	}

	v := current
	v.Name, _ = form.Text(FieldName)
	v.Difficulty, _ = form.Number(FieldDifficulty)
	v.Boulder, _ = form.Checked(FieldBoulder)
	v.Sport, _ = form.Checked(FieldSport)
	v.Trad, _ = form.Checked(FieldTrad)
	v.SitStart, _ = form.Checked(FieldSitStart)
	v.TopOut, _ = form.Checked(FieldTopOut)
	v.Notes, _ = form.Text(FieldNotes)

	return v, nil
}

// WriteForm writes route information into a form. Nothing is written unless every
// field is bound with the right kind.
func WriteForm(form Form, v Values) error {
	if err := checkBinding(form); err != nil {
		return err
	}

	form.SetText(FieldName, v.Name)
	form.SetNumber(FieldDifficulty, v.Difficulty)
	form.SetChecked(FieldBoulder, v.Boulder)
	form.SetChecked(FieldSport, v.Sport)
	form.SetChecked(FieldTrad, v.Trad)
	form.SetChecked(FieldSitStart, v.SitStart)
	form.SetChecked(FieldTopOut, v.TopOut)
	form.SetText(FieldNotes, v.Notes)

	return nil
}

// MapForm is an in-memory form. A field is bound when its key is present.
type MapForm map[Field]any

// NewMapForm returns a form with every field bound to the given values
func NewMapForm(v Values) MapForm {
	return MapForm{
		FieldName:       v.Name,
		FieldDifficulty: v.Difficulty,
		FieldBoulder:    v.Boulder,
		FieldSport:      v.Sport,
		FieldTrad:       v.Trad,
		FieldSitStart:   v.SitStart,
		FieldTopOut:     v.TopOut,
		FieldNotes:      v.Notes,
	}
}

func (m MapForm) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

func (m MapForm) Text(f Field) (string, bool) {
	s, ok := m[f].(string)
	return s, ok
}

func (m MapForm) Number(f Field) (int, bool) {
	n, ok := m[f].(int)
	return n, ok
}

func (m MapForm) Checked(f Field) (bool, bool) {
	c, ok := m[f].(bool)
	return c, ok
}

func (m MapForm) SetText(f Field, s string) bool {
	if _, ok := m[f].(string); !ok {
		return false
	}
	m[f] = s
	return true
}

func (m MapForm) SetNumber(f Field, n int) bool {
	if _, ok := m[f].(int); !ok {
		return false
	}
	m[f] = n
	return true
}

func (m MapForm) SetChecked(f Field, on bool) bool {
	if _, ok := m[f].(bool); !ok {
		return false
	}
	m[f] = on
	return true
}
