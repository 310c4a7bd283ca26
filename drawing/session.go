package drawing

import "fmt"

// State is the interaction state of a drawing Session.
type State uint8

const (
	StateIdle State = iota
	StatePlacing
	StateDragging
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlacing:
		return "placing"
	case StateDragging:
		return "dragging"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// A Session tracks one interactive footprint drawing. It is driven by
// discrete UI events and owns its Footprint; the geometry functions it
// calls never see the interaction state.
//
// A Session is not safe for concurrent use.
type Session struct {
	Footprint Footprint
	Snap      SnapConfig

	state    State
	dragging int
	// resume is the state to return to when a drag ends.
	resume State
}

// NewSession returns an idle session with the given snap configuration.
func NewSession(snap SnapConfig) *Session {
	return &Session{Snap: snap, dragging: -1}
}

func (s *Session) State() State {
	return s.state
}

// Dragging returns the index of the point being dragged, or -1.
func (s *Session) Dragging() int {
	if s.state != StateDragging {
		return -1
	}
	return s.dragging
}

// Preview returns where a click at p would place the next point, so the UI
// can draw the rubber-band segment. It does not change the session.
func (s *Session) Preview(p Point) Point {
	if s.state == StateComplete || s.state == StateDragging {
		return p
	}
	return AppendPoint(p, s.Snap, s.Footprint.Points)
}

// Click places a new point at p (after snapping). It returns the placed
// point and whether one was added. Clicks are ignored while dragging or
// once the footprint is complete, and a click on top of the last point is
// dropped.
func (s *Session) Click(p Point) (Point, bool) {
	if s.state == StateComplete || s.state == StateDragging {
		return p, false
	}
	p = AppendPoint(p, s.Snap, s.Footprint.Points)
	if !s.Footprint.Append(p) {
		return p, false
	}
	s.state = StatePlacing
	return p, true
}

// Complete closes the footprint. It requires at least 3 points.
func (s *Session) Complete() error {
	if s.state != StatePlacing {
		return fmt.Errorf("complete in state %s: %w", s.state, ErrNotApplicable)
	}
	if !s.Footprint.Close() {
		return fmt.Errorf("closing %d points: %w", s.Footprint.Len(), ErrNotApplicable)
	}
	s.state = StateComplete
	return nil
}

// BeginDrag starts dragging point i.
func (s *Session) BeginDrag(i int) error {
	if s.state != StatePlacing && s.state != StateComplete {
		return fmt.Errorf("drag in state %s: %w", s.state, ErrNotApplicable)
	}
	if i < 0 || i >= s.Footprint.Len() {
		return fmt.Errorf("drag point %d of %d: %w", i, s.Footprint.Len(), ErrNotApplicable)
	}
	s.resume, s.state, s.dragging = s.state, StateDragging, i
	return nil
}

// DragTo moves the dragged point to p. Moves that would make the point
// coincide with a neighbor are ignored.
func (s *Session) DragTo(p Point) bool {
	if s.state != StateDragging {
		return false
	}
	return s.Footprint.Replace(s.dragging, p)
}

// EndDrag finishes a drag and returns to the previous state.
func (s *Session) EndDrag() {
	if s.state != StateDragging {
		return
	}
	s.state, s.dragging = s.resume, -1
}

// ForceRightAngle squares the corner at vertex i of a complete footprint
// by moving the following vertex. It returns an error wrapping
// ErrNotApplicable if there is nothing to do.
func (s *Session) ForceRightAngle(i int) error {
	if s.state != StateComplete {
		return fmt.Errorf("force right angle in state %s: %w", s.state, ErrNotApplicable)
	}
	p, err := ForceRightAngleAt(&s.Footprint, i)
	if err != nil {
		return err
	}
	next := (i + 1) % s.Footprint.Len()
	if !s.Footprint.Replace(next, p) {
		return fmt.Errorf("moving vertex %d onto a neighbor: %w", next, ErrNotApplicable)
	}
	return nil
}

// Undo removes the last point. Undoing the only point returns the session
// to idle; undoing on a complete footprint reopens it.
func (s *Session) Undo() bool {
	n := s.Footprint.Len()
	if n == 0 || s.state == StateDragging {
		return false
	}
	s.Footprint.Points = s.Footprint.Points[:n-1]
	s.Footprint.Closed = false
	if n == 1 {
		s.state = StateIdle
	} else {
		s.state = StatePlacing
	}
	return true
}

// Clear discards the footprint and returns to idle.
func (s *Session) Clear() {
	s.Footprint.Reset()
	s.state, s.dragging = StateIdle, -1
}

// Measurements summarizes a footprint for on-screen labels.
type Measurements struct {
	Points      int
	AreaM2      float64
	PerimeterM  float64
	Complete    bool
	ScaleFactor float64
}

// Measurements returns the current area and perimeter in meters, where
// scale is meters per drawing unit.
func (s *Session) Measurements(scale float64) Measurements {
	pts := s.Footprint.Points
	return Measurements{
		Points:      len(pts),
		AreaM2:      ScaledArea(pts, scale),
		PerimeterM:  ScaledPerimeter(pts, scale),
		Complete:    s.state == StateComplete || (s.state == StateDragging && s.resume == StateComplete),
		ScaleFactor: scale,
	}
}
