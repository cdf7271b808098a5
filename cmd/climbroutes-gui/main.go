package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/internal/config"
	"github.com/siili/climbingroutes/internal/infoform"
	"github.com/siili/climbingroutes/internal/logging"
	"github.com/siili/climbingroutes/internal/store"
	"github.com/siili/climbingroutes/pkg/analysis"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
	"github.com/siili/climbingroutes/pkg/script"
	"github.com/siili/climbingroutes/pkg/viewer"
)

type App struct {
	window  fyne.Window
	cfg     config.Config
	palette grade.Palette
	log     zerolog.Logger

	chain    *route.Chain
	view     *viewer.RouteView
	form     *infoform.InfoForm
	card     *widget.Label
	stats    *widget.Label
	clip     *widget.Label
	warnings *widget.Label
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	palette, err := cfg.BandPalette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("Climbing Routes")

	appInstance := &App{
		window:  w,
		cfg:     cfg,
		palette: palette,
		log:     logging.New(cfg.LogLevel, os.Stderr),
	}

	// Check if a script was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadScript(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(float32(cfg.Viewer.Width), float32(cfg.Viewer.Height)))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Climbing Routes")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open a tap script to build a route")

	openButton := widget.NewButton("Open Script", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadScript(reader.URI().Path())
	}, a.window)
}

func (a *App) loadScript(filename string) {
	s, err := script.Parse(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load script: %w", err), a.window)
		return
	}
	res, err := script.Replay(s, a.palette, a.log)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to replay script: %w", err), a.window)
		return
	}

	chain := res.Session.Active()
	if chain == nil {
		routes := res.Session.Routes()
		if len(routes) == 0 {
			dialog.ShowError(errors.New("the script places no route"), a.window)
			return
		}
		chain = routes[len(routes)-1]
	}

	a.chain = chain
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.card = widget.NewLabel("")
	a.card.TextStyle = fyne.TextStyle{Bold: true}
	a.card.Wrapping = fyne.TextWrapWord
	a.stats = widget.NewLabel("")
	a.clip = widget.NewLabel("Clip: none selected")
	a.warnings = widget.NewLabel("")
	a.warnings.Wrapping = fyne.TextWrapWord

	a.view = viewer.NewRouteView(a.chain)
	a.view.SetOnClipTapped(func(index int) {
		w := a.chain.At(index)
		a.clip.SetText(fmt.Sprintf("Clip %d: %s", index, analysis.FormatVector(w.Position())))
	})

	a.form = infoform.New(a.palette)
	if err := a.chain.FillForm(a.form); err != nil {
		dialog.ShowError(err, a.window)
	}

	applyButton := widget.NewButton("Apply", a.applyForm)
	saveButton := widget.NewButton("Save", a.saveRoute)
	openButton := widget.NewButton("Open Script", a.showFileDialog)

	// Instructions
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on a clip to select it\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Double-click to reset the view\n" +
			"• Edit the info and press Apply to recolor",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		a.card,
		widget.NewSeparator(),
		a.form.Content(),
		container.NewHBox(applyButton, saveButton),
		a.warnings,
		widget.NewSeparator(),
		widget.NewLabel("Route Statistics:"),
		a.stats,
		a.clip,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(340, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
	a.refreshInfo()
}

func (a *App) applyForm() {
	res, err := a.chain.ApplyForm(a.form)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	var lines []string
	if !res.OK() {
		lines = append(lines, res.Err.Error())
	}
	for _, w := range res.Warnings {
		lines = append(lines, w.Error())
	}
	a.warnings.SetText(strings.Join(lines, "\n"))

	// The placeholder name is filled in on apply
	_ = a.chain.FillForm(a.form)
	a.refreshInfo()
	a.view.Render(float64(a.view.Size().Width), float64(a.view.Size().Height))
}

func (a *App) saveRoute() {
	if v := a.chain.Info().Validate(); !v.OK() {
		dialog.ShowError(fmt.Errorf("route cannot be saved: %w", v.Err), a.window)
		return
	}

	s, err := store.Open(a.cfg.Storage.Path, a.log)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	defer s.Close()

	if err := s.Save(a.chain); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	dialog.ShowInformation("Saved", fmt.Sprintf("Saved %s", a.chain.Info().DisplayName()), a.window)
}

func (a *App) refreshInfo() {
	a.card.SetText(a.chain.Info().Card().String())

	result := analysis.AnalyzeRoute(a.chain)
	a.stats.SetText(fmt.Sprintf(
		"Clips: %d\nTotal length: %s\nHeight gain: %s\nLongest segment: %s",
		result.WaypointCount,
		analysis.FormatMeasurement(result.TotalLength, ""),
		analysis.FormatMeasurement(result.HeightGain, ""),
		analysis.FormatMeasurement(result.MaxSegmentLength, ""),
	))
}
