package wisp

import "strings"

// CursorKind is the visual interaction state of the cursor.
type CursorKind uint8

const (
	// KindUnset is only meaningful inside a Hint and means "no override".
	// Classify never returns it.
	KindUnset CursorKind = iota
	KindDefault
	KindLink
	KindButton
	KindCard
	KindDragging
	KindTyping
	KindLoading
)

// numKinds is the number of kinds including KindUnset.
const numKinds = int(KindLoading) + 1

var kindNames = [numKinds]string{
	KindUnset:    "unset",
	KindDefault:  "default",
	KindLink:     "link",
	KindButton:   "button",
	KindCard:     "card",
	KindDragging: "dragging",
	KindTyping:   "typing",
	KindLoading:  "loading",
}

// String returns the lower-case tag for k.
func (k CursorKind) String() string {
	if int(k) < numKinds {
		return kindNames[k]
	}
	return "default"
}

// ParseCursorKind maps a free-form state tag to a kind. Unknown tags map to
// KindDefault so every declared tag resolves to exactly one state.
func ParseCursorKind(tag string) CursorKind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "link", "a", "anchor":
		return KindLink
	case "button", "btn":
		return KindButton
	case "card":
		return KindCard
	case "drag", "dragging", "grab":
		return KindDragging
	case "text", "typing", "input":
		return KindTyping
	case "loading", "wait", "busy":
		return KindLoading
	default:
		return KindDefault
	}
}

// CursorState is the current classification. An empty Label means no label.
type CursorState struct {
	Kind  CursorKind
	Label string
}

// DefaultState is the state used when nothing more specific applies.
var DefaultState = CursorState{Kind: KindDefault}

// Role is a generic marker a node can carry when it behaves like a link,
// button or card without being one.
type Role uint8

const (
	RoleNone       Role = iota // no role marker
	RoleLinkLike               // classified with the anchor rule
	RoleButtonLike             // classified with the button rule
	RoleCardLike               // classified as a card
)

// Hint is the participation descriptor any node may attach to take part in
// cursor behavior. The zero value opts out of everything.
type Hint struct {
	// State, when not KindUnset, overrides classification for this node and
	// its descendants.
	State CursorKind
	// Label is used verbatim as the cursor label when non-empty.
	Label string
	// Magnetic pulls the cursor toward the node's center when the pointer is
	// within the magnet radius.
	Magnetic bool
	// Role marks link-like, button-like or card-like behavior.
	Role Role
}
