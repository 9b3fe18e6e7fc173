package install

import (
	"fmt"

	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

// Request is a single user-selected operation. It is passed by value and
// never modified by the orchestrator.
type Request struct {
	Targets []target.Kind
	Action  target.Action
	// ResolvedRoot is a Steam installation root supplied by the caller.
	// When empty the orchestrator asks its Resolver.
	ResolvedRoot string
	// MillenniumRequested runs the companion patcher before a Steam install or reset.
	MillenniumRequested bool
}

// Validate rejects requests that would be ambiguous or unsafe to run.
func (r Request) Validate() error {
	switch r.Action {
	case target.Install, target.Uninstall, target.Reset:
	default:
		return newError(InvalidRequest, 0, fmt.Errorf(messages.RequestUnknownActionFmt, r.Action))
	}
	if len(r.Targets) == 0 {
		return newError(InvalidRequest, 0, fmt.Errorf(messages.RequestNoTargets))
	}
	seen := make(map[target.Kind]bool, len(r.Targets))
	steam := false
	chat := false
	for _, kind := range r.Targets {
		switch {
		case kind == target.Steam:
			steam = true
		case kind.IsChatClient():
			chat = true
		default:
			return newError(InvalidRequest, kind, fmt.Errorf(messages.RequestUnknownTargetFmt, kind))
		}
		if seen[kind] {
			return newError(InvalidRequest, kind, fmt.Errorf(messages.RequestDuplicateTargetFmt, kind))
		}
		seen[kind] = true
	}
	if steam && chat {
		return newError(InvalidRequest, 0, fmt.Errorf(messages.RequestMixedTargets))
	}
	return nil
}

func (r Request) isSteam() bool {
	return len(r.Targets) == 1 && r.Targets[0] == target.Steam
}
