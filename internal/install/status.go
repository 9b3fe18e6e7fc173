package install

import (
	"context"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

// TargetStatus describes one target without changing anything.
type TargetStatus struct {
	Target      target.Kind `json:"-"`
	Name        string      `json:"target"`
	DisplayName string      `json:"display_name"`
	// Eligible is set when the host application (or Steam's skins folder) exists.
	Eligible  bool   `json:"eligible"`
	Installed bool   `json:"installed"`
	Root      string `json:"root,omitempty"`
	Path      string `json:"path,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Inspect reports the state of each kind. steamRoot overrides the resolver
// when non-empty. Lookup failures are reported in Detail, not as errors;
// an error is returned only for an unreadable filesystem.
func (o *Orchestrator) Inspect(ctx context.Context, kinds []target.Kind, steamRoot string) ([]TargetStatus, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]TargetStatus, 0, len(kinds))
	for _, kind := range kinds {
		p := o.profiles[kind]
		st := TargetStatus{Target: kind, Name: kind.String(), DisplayName: p.DisplayName}
		var err error
		if kind == target.Steam {
			err = o.inspectSteam(ctx, p, steamRoot, &st)
		} else {
			err = o.inspectChat(p, &st)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (o *Orchestrator) inspectChat(p target.Profile, st *TargetStatus) error {
	st.Root = p.ClientRoot(o.configRoot)
	st.Path = p.ThemePath(o.configRoot)
	eligible, err := fsutil.IsDir(o.sys, st.Root)
	if err != nil {
		return err
	}
	st.Eligible = eligible
	if !eligible {
		st.Detail = messages.StatusClientMissing
		return nil
	}
	installed, err := fsutil.Exists(o.sys, st.Path)
	if err != nil {
		return err
	}
	st.Installed = installed
	return nil
}

func (o *Orchestrator) inspectSteam(ctx context.Context, p target.Profile, steamRoot string, st *TargetStatus) error {
	root := steamRoot
	if root == "" {
		res, err := o.resolver.Resolve(ctx, target.Steam)
		if err != nil {
			st.Detail = err.Error()
			return nil
		}
		if !res.Found {
			st.Detail = messages.SteamRootNotFound
			return nil
		}
		root = res.Path
	}
	st.Root = root
	st.Path = p.DestinationPath(root)
	eligible, err := fsutil.IsDir(o.sys, target.SkinsDir(root))
	if err != nil {
		return err
	}
	st.Eligible = eligible
	if !eligible {
		st.Detail = messages.SteamSkinsMissing
		return nil
	}
	installed, err := fsutil.IsDir(o.sys, st.Path)
	if err != nil {
		return err
	}
	st.Installed = installed
	return nil
}

// SteamRoot resolves the Steam installation root without touching it.
func (o *Orchestrator) SteamRoot(ctx context.Context) (string, error) {
	r := &run{o: o, ctx: ctx}
	if ctx == nil {
		r.ctx = context.Background()
	}
	return r.steamRoot()
}
