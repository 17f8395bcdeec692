package wisp

import (
	"strings"
	"unicode/utf8"
)

const (
	// maxLinkLabelRunes is the longest anchor text shown verbatim.
	maxLinkLabelRunes = 20
	// maxButtonLabelRunes is the longest button text shown verbatim.
	maxButtonLabelRunes = 30
	// linkFallbackLabel replaces anchor text that is too long.
	linkFallbackLabel = "View"
)

func hasStateOverride(n *Node) bool {
	return n.Cursor != nil && n.Cursor.State != KindUnset
}

func isAnchor(n *Node) bool    { return n.Element == ElementAnchor }
func isButton(n *Node) bool    { return n.Element == ElementButton }
func isTextInput(n *Node) bool { return n.Element == ElementTextInput }

func hasRole(n *Node) bool {
	return n.Cursor != nil && n.Cursor.Role != RoleNone
}

// Classify maps the node under the pointer to a cursor state. It reads only
// the tree at call time and keeps no memory between calls. A nil target
// classifies as the default state.
//
// Rules, first match wins: explicit state override; anchor; button; text
// input; role marker; default.
func Classify(target *Node) CursorState {
	if target == nil {
		return DefaultState
	}

	if n := target.Closest(hasStateOverride); n != nil {
		if int(n.Cursor.State) >= numKinds {
			return DefaultState
		}
		return CursorState{Kind: n.Cursor.State, Label: n.Cursor.Label}
	}
	if n := target.Closest(isAnchor); n != nil {
		return CursorState{Kind: KindLink, Label: linkLabel(n)}
	}
	if n := target.Closest(isButton); n != nil {
		return CursorState{Kind: KindButton, Label: buttonLabel(n)}
	}
	if target.Closest(isTextInput) != nil {
		return CursorState{Kind: KindTyping}
	}
	if n := target.Closest(hasRole); n != nil {
		switch n.Cursor.Role {
		case RoleLinkLike:
			return CursorState{Kind: KindLink, Label: linkLabel(n)}
		case RoleButtonLike:
			return CursorState{Kind: KindButton, Label: buttonLabel(n)}
		case RoleCardLike:
			return CursorState{Kind: KindCard, Label: buttonLabel(n)}
		}
	}
	return DefaultState
}

// linkLabel prefers the node's label override, then short text, then the
// fallback. Empty text yields no label.
func linkLabel(n *Node) string {
	if h := n.CursorHint(); h.Label != "" {
		return h.Label
	}
	text := strings.TrimSpace(n.TextContent())
	if utf8.RuneCountInString(text) <= maxLinkLabelRunes {
		return text
	}
	return linkFallbackLabel
}

// buttonLabel prefers the node's label override, then short text. Long text
// yields no label.
func buttonLabel(n *Node) string {
	if h := n.CursorHint(); h.Label != "" {
		return h.Label
	}
	text := strings.TrimSpace(n.TextContent())
	if utf8.RuneCountInString(text) <= maxButtonLabelRunes {
		return text
	}
	return ""
}
