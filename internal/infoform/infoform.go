// Package infoform binds the route information fields to fyne widgets.
package infoform

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/siili/climbingroutes/pkg/grade"
)

// InfoForm is the route information editor. It implements grade.Form.
type InfoForm struct {
	name       *widget.Entry
	difficulty *widget.Slider
	checks     map[grade.Field]*widget.Check
	notes      *widget.Entry

	gradeLabel *widget.Label
	swatch     *canvas.Rectangle
	palette    grade.Palette
}

var _ grade.Form = (*InfoForm)(nil)

// New creates a form with all fields bound
func New(palette grade.Palette) *InfoForm {
	f := &InfoForm{
		name:       widget.NewEntry(),
		difficulty: widget.NewSlider(grade.MinDifficulty, grade.MaxDifficulty),
		notes:      widget.NewMultiLineEntry(),
		gradeLabel: widget.NewLabel(""),
		swatch:     canvas.NewRectangle(palette.Color(grade.Green)),
		palette:    palette,
		checks: map[grade.Field]*widget.Check{
			grade.FieldBoulder:  widget.NewCheck("Boulder", nil),
			grade.FieldSport:    widget.NewCheck("Sport", nil),
			grade.FieldTrad:     widget.NewCheck("Trad", nil),
			grade.FieldSitStart: widget.NewCheck("Sit start", nil),
			grade.FieldTopOut:   widget.NewCheck("Top out", nil),
		},
	}

	f.name.SetPlaceHolder(grade.PlaceholderName)
	f.notes.SetPlaceHolder("Notes")
	f.notes.Wrapping = fyne.TextWrapWord
	f.difficulty.Step = 1
	f.difficulty.OnChanged = func(float64) { f.updateGrade() }
	f.swatch.SetMinSize(fyne.NewSize(24, 24))
	f.updateGrade()

	return f
}

// Unbind drops a field, e.g. for editors that do not show it
func (f *InfoForm) Unbind(field grade.Field) {
	switch field {
	case grade.FieldName:
		f.name = nil
	case grade.FieldDifficulty:
		f.difficulty = nil
	case grade.FieldNotes:
		f.notes = nil
	default:
		delete(f.checks, field)
	}
}

// Content lays out the bound widgets
func (f *InfoForm) Content() fyne.CanvasObject {
	items := []*widget.FormItem{}
	if f.name != nil {
		items = append(items, widget.NewFormItem("Name", f.name))
	}
	if f.difficulty != nil {
		items = append(items, widget.NewFormItem("Difficulty",
			container.NewBorder(nil, nil, nil, container.NewHBox(f.swatch, f.gradeLabel), f.difficulty)))
	}

	var types, marks []fyne.CanvasObject
	for _, field := range []grade.Field{grade.FieldBoulder, grade.FieldSport, grade.FieldTrad} {
		if c, ok := f.checks[field]; ok {
			types = append(types, c)
		}
	}
	for _, field := range []grade.Field{grade.FieldSitStart, grade.FieldTopOut} {
		if c, ok := f.checks[field]; ok {
			marks = append(marks, c)
		}
	}
	items = append(items,
		widget.NewFormItem("Type", container.NewHBox(types...)),
		widget.NewFormItem("", container.NewHBox(marks...)))

	if f.notes != nil {
		items = append(items, widget.NewFormItem("Notes", f.notes))
	}

	return widget.NewForm(items...)
}

// GradeText returns the grade label currently shown next to the slider
func (f *InfoForm) GradeText() string {
	return f.gradeLabel.Text
}

func (f *InfoForm) updateGrade() {
	if f.difficulty == nil {
		return
	}
	d := int(math.Round(f.difficulty.Value))
	text, err := grade.Text(d)
	if err != nil {
		f.gradeLabel.SetText("?")
		return
	}
	band, _ := grade.BandFor(d)
	f.gradeLabel.SetText(text)
	f.swatch.FillColor = f.palette.Color(band)
	f.swatch.Refresh()
}

func (f *InfoForm) Has(field grade.Field) bool {
	switch field {
	case grade.FieldName:
		return f.name != nil
	case grade.FieldDifficulty:
		return f.difficulty != nil
	case grade.FieldNotes:
		return f.notes != nil
	default:
		_, ok := f.checks[field]
		return ok
	}
}

func (f *InfoForm) entry(field grade.Field) *widget.Entry {
	switch field {
	case grade.FieldName:
		return f.name
	case grade.FieldNotes:
		return f.notes
	}
	return nil
}

func (f *InfoForm) Text(field grade.Field) (string, bool) {
	e := f.entry(field)
	if e == nil {
		return "", false
	}
	return e.Text, true
}

func (f *InfoForm) Number(field grade.Field) (int, bool) {
	if field != grade.FieldDifficulty || f.difficulty == nil {
		return 0, false
	}
	return int(math.Round(f.difficulty.Value)), true
}

func (f *InfoForm) Checked(field grade.Field) (bool, bool) {
	c, ok := f.checks[field]
	if !ok {
		return false, false
	}
	return c.Checked, true
}

func (f *InfoForm) SetText(field grade.Field, s string) bool {
	e := f.entry(field)
	if e == nil {
		return false
	}
	e.SetText(s)
	return true
}

func (f *InfoForm) SetNumber(field grade.Field, n int) bool {
	if field != grade.FieldDifficulty || f.difficulty == nil {
		return false
	}
	f.difficulty.SetValue(float64(n))
	f.updateGrade()
	return true
}

func (f *InfoForm) SetChecked(field grade.Field, on bool) bool {
	c, ok := f.checks[field]
	if !ok {
		return false
	}
	c.SetChecked(on)
	return true
}
