package script

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/internal/session"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
)

// hit is a scripted tap
type hit struct {
	pos     geometry.Vector3
	surface session.Surface
}

func (h hit) Position() geometry.Vector3 { return h.pos }

func (h hit) Surface() session.Surface { return h.surface }

// anchorer places in-memory handles
type anchorer struct {
	sys *route.SelectionSystem
}

func (a anchorer) Anchor(h session.Hit) route.Node {
	return a.sys.Place(h.Position())
}

// Result is the state after replaying a script
type Result struct {
	Session     *session.Session
	Selection   *route.SelectionSystem
	Recomputed  int // segments recomputed by ticks
	Ignored     int // taps the session ignored
	Validations []grade.Validation
}

func parseSurface(name string) (session.Surface, error) {
	for _, s := range []session.Surface{
		session.SurfaceHorizontalUp,
		session.SurfaceHorizontalDown,
		session.SurfaceVertical,
		session.SurfacePoint,
	} {
		if name == s.String() {
			return s, nil
		}
	}
	if name == "" {
		return session.SurfaceHorizontalUp, nil
	}
	return session.SurfaceHorizontalUp, fmt.Errorf("unknown surface %q", name)
}

// Replay runs the script against a fresh session
func Replay(s *Script, palette grade.Palette, log zerolog.Logger) (*Result, error) {
	sys := route.NewSelectionSystem()
	sess := session.New(anchorer{sys: sys}, palette, log)
	sess.SetReady()

	res := &Result{Session: sess, Selection: sys}
	for i, step := range s.Steps {
		if err := res.apply(step); err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	log.Debug().
		Str("script", s.Name).
		Int("steps", len(s.Steps)).
		Int("routes", len(sess.Routes())).
		Msg("Script replayed")

	return res, nil
}

func (r *Result) handle(index int) (*route.Handle, error) {
	active := r.Session.Active()
	if active == nil {
		return nil, fmt.Errorf("no active route")
	}
	if index < 0 || index >= active.Len() {
		return nil, fmt.Errorf("waypoint %d out of range (route has %d)", index, active.Len())
	}
	h, ok := active.At(index).Node().(*route.Handle)
	if !ok {
		return nil, fmt.Errorf("waypoint %d is not scriptable", index)
	}
	return h, nil
}

func (r *Result) apply(step Step) error {
	switch {
	case step.Tap != nil:
		surface, err := parseSurface(step.Tap.Surface)
		if err != nil {
			return err
		}
		if r.Session.Tap(hit{pos: step.Tap.At.Vector3(), surface: surface}) == nil {
			r.Ignored++
		}

	case step.Select != nil:
		h, err := r.handle(*step.Select)
		if err != nil {
			return err
		}
		h.Select()
		r.Recomputed += r.Session.Tick(true)

	case step.Drag != nil:
		h, err := r.handle(step.Drag.Index)
		if err != nil {
			return err
		}
		h.BeginTransform()
		h.Move(step.Drag.To.Vector3())
		r.Recomputed += r.Session.Tick(true)

	case step.Release:
		if h := r.Selection.Selected(); h != nil {
			h.EndTransform()
		}

	case step.Deselect:
		r.Selection.Deselect()

	case step.Tick > 0:
		for i := 0; i < step.Tick; i++ {
			r.Recomputed += r.Session.Tick(true)
		}

	case step.Info != nil:
		active := r.Session.Active()
		if active == nil {
			return fmt.Errorf("no active route")
		}
		v, err := step.Info.Values(active.Info().Values())
		if err != nil {
			return err
		}
		validation, err := active.UpdateInfo(v)
		if err != nil {
			return err
		}
		r.Validations = append(r.Validations, validation)

	case step.NewRoute:
		r.Session.ClearSelection()
		r.Selection.Deselect()
	}

	return nil
}
