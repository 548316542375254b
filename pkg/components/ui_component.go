package components

import "github.com/decker502/texthover/pkg/ecs"

// UIState represents the current pointer-interaction state of a UI element.
type UIState int

const (
	// UINormal indicates the pointer is not interacting with the UI element.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being pressed.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// String returns a readable name, used in logs.
func (s UIState) String() string {
	switch s {
	case UINormal:
		return "normal"
	case UIHovered:
		return "hovered"
	case UIClicked:
		return "clicked"
	case UIDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// InteractionComponent tracks the pointer-interaction state of a UI node.
//
// Changed is set by UIInteractionSystem in the tick the state changes and cleared
// at the end of that tick, so readers later in the same tick can react to transitions only.
type InteractionComponent struct {
	State   UIState
	Changed bool
}

// UINodeComponent is the screen-space rectangle of a UI element (top-left anchored,
// not affected by the camera).
type UINodeComponent struct {
	X, Y          float64
	Width, Height float64
	Enabled       bool
}

// TextSourceComponent links a UI node to the text widget entity it displays.
type TextSourceComponent struct {
	Target ecs.EntityID
}
