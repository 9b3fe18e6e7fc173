package install

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/spacetheme/spacetheme/internal/fsutil"
	"github.com/spacetheme/spacetheme/internal/messages"
	"github.com/spacetheme/spacetheme/internal/target"
)

const (
	// DefaultDiffMaxLines is the default maximum number of diff lines shown per target.
	DefaultDiffMaxLines = 40
	// diffLineCapFlagName is the CLI flag name used to raise per-target diff line caps.
	diffLineCapFlagName = "--lines"
)

// DiffPreview compares an installed stylesheet with the published one.
type DiffPreview struct {
	Target      target.Kind `json:"-"`
	Name        string      `json:"target"`
	Path        string      `json:"path"`
	Installed   bool        `json:"installed"`
	Changed     bool        `json:"changed"`
	UnifiedDiff string      `json:"diff,omitempty"`
	Truncated   bool        `json:"truncated,omitempty"`
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// Preview downloads the published stylesheet once per source and diffs it
// against each chat client's installed copy. A missing copy diffs against
// empty content. Nothing is written.
func (o *Orchestrator) Preview(ctx context.Context, kinds []target.Kind, maxLines int) ([]DiffPreview, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	remote := map[string]string{}
	out := make([]DiffPreview, 0, len(kinds))
	for _, kind := range kinds {
		if !kind.IsChatClient() {
			return nil, newError(InvalidRequest, kind, fmt.Errorf(messages.PreviewUnsupportedFmt, kind))
		}
		p := o.profiles[kind]
		published, ok := remote[p.SourceURL]
		if !ok {
			var buf bytes.Buffer
			if _, err := o.fetcher.Fetch(ctx, p.SourceURL, &buf); err != nil {
				return nil, newError(NetworkFailure, kind, err)
			}
			published = buf.String()
			remote[p.SourceURL] = published
		}

		path := p.ThemePath(o.configRoot)
		installed, err := fsutil.Exists(o.sys, path)
		if err != nil {
			return nil, err
		}
		current := ""
		if installed {
			data, err := o.sys.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf(messages.PreviewReadFmt, path, err)
			}
			current = string(data)
		}

		preview := DiffPreview{Target: kind, Name: kind.String(), Path: path, Installed: installed}
		if normalizeContent(current) != normalizeContent(published) {
			preview.Changed = true
			preview.UnifiedDiff, preview.Truncated = renderTruncatedUnifiedDiff(
				path+" (installed)",
				p.SourceURL,
				normalizeContent(current),
				normalizeContent(published),
				maxLines,
			)
		}
		out = append(out, preview)
	}
	return out, nil
}

func normalizeContent(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(
		truncated,
		fmt.Sprintf(messages.PreviewTruncatedFmt, limit, diffLineCapFlagName),
	)
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
