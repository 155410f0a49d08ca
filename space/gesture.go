package space

// State is the pointer interaction state of a WindowSpace.
type State int

const (
	// Idle: no window under the pointer claims the interaction.
	Idle State = iota
	// Hovering: the pointer is over a window but no gesture is armed.
	Hovering
	// Moving: the title bar of a window was pressed.
	Moving
	// Resizing: an edge of a window was pressed.
	Resizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Hovering:
		return "hovering"
	case Moving:
		return "moving"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// DragKind is the gesture kind a held pointer applies to the selected window.
type DragKind int

const (
	DragNone DragKind = iota
	DragMove
	DragResize
)

func (k DragKind) String() string {
	switch k {
	case DragNone:
		return "none"
	case DragMove:
		return "move"
	case DragResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Gesture is the tagged drag mode. Window is set for every state except
// Idle; Edge is only meaningful while Resizing.
type Gesture struct {
	State  State
	Window ID
	Edge   Edge
}

// Kind returns the drag kind the gesture applies.
func (g Gesture) Kind() DragKind {
	switch g.State {
	case Moving:
		return DragMove
	case Resizing:
		return DragResize
	default:
		return DragNone
	}
}

// Selected returns the window receiving move/resize deltas, or 0.
func (g Gesture) Selected() ID {
	if g.Kind() == DragNone {
		return 0
	}
	return g.Window
}

func (g *Gesture) beginMove(id ID) {
	*g = Gesture{State: Moving, Window: id}
}

func (g *Gesture) beginResize(id ID, e Edge) {
	*g = Gesture{State: Resizing, Window: id, Edge: e}
}

// deselect drops a pending move. An armed resize survives so that a title
// bar miss later in the same pass cannot undo an edge grab.
func (g *Gesture) deselect() {
	if g.State == Moving {
		*g = Gesture{}
	}
}

// hover records the window that claimed the pointer this pass, unless a
// gesture is armed.
func (g *Gesture) hover(id ID) {
	if g.Kind() == DragNone {
		*g = Gesture{State: Hovering, Window: id}
	}
}

func (g *Gesture) unhover() {
	if g.State == Hovering {
		*g = Gesture{}
	}
}

// forget clears any reference to id.
func (g *Gesture) forget(id ID) {
	if g.Window == id {
		*g = Gesture{}
	}
}

func (g *Gesture) release() {
	*g = Gesture{}
}
