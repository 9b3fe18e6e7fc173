// Package target describes the host applications a theme can be installed
// into and the actions a request may perform on them.
package target

import (
	"fmt"
	"strings"

	"github.com/spacetheme/spacetheme/internal/messages"
)

// Kind identifies a single host application.
type Kind int

const (
	// BetterDiscord is the first chat-client mod loader.
	BetterDiscord Kind = iota + 1
	// Vencord is the second chat-client mod loader.
	Vencord
	// Steam is the game-distribution client, themed through Millennium.
	Steam
)

// ChatClients lists the chat-client kinds in the fixed order they are processed.
var ChatClients = []Kind{BetterDiscord, Vencord}

// All lists every known kind.
var All = []Kind{BetterDiscord, Vencord, Steam}

// String returns the CLI name of the kind.
func (k Kind) String() string {
	switch k {
	case BetterDiscord:
		return "betterdiscord"
	case Vencord:
		return "vencord"
	case Steam:
		return "steam"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsChatClient reports whether k is one of the chat-client mod loaders.
func (k Kind) IsChatClient() bool {
	return k == BetterDiscord || k == Vencord
}

// Action is the operation a request performs.
type Action int

const (
	// Install downloads and places the theme.
	Install Action = iota + 1
	// Uninstall removes the theme if present.
	Uninstall
	// Reset removes the theme if present and installs it again.
	Reset
)

// String returns the CLI name of the action.
func (a Action) String() string {
	switch a {
	case Install:
		return "install"
	case Uninstall:
		return "uninstall"
	case Reset:
		return "reset"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Selectors maps CLI target names to the kinds they expand to.
// "discord" expands to every chat client so both loaders are handled together.
var Selectors = map[string][]Kind{
	"discord":       ChatClients,
	"betterdiscord": {BetterDiscord},
	"vencord":       {Vencord},
	"steam":         {Steam},
}

// SelectorNames lists the accepted target names in display order.
var SelectorNames = []string{"discord", "betterdiscord", "vencord", "steam"}

// ParseSelector resolves a CLI target name to its kinds.
func ParseSelector(name string) ([]Kind, error) {
	kinds, ok := Selectors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf(messages.TargetUnknownFmt, name, strings.Join(SelectorNames, ", "))
	}
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out, nil
}

// ParseAction resolves a CLI action name.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "install":
		return Install, nil
	case "uninstall":
		return Uninstall, nil
	case "reset":
		return Reset, nil
	default:
		return 0, fmt.Errorf(messages.TargetUnknownActionFmt, name)
	}
}
