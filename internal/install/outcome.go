package install

import (
	"errors"

	"github.com/spacetheme/spacetheme/internal/progress"
	"github.com/spacetheme/spacetheme/internal/target"
)

// Status is the terminal state of a run.
type Status int

const (
	// Completed means every processed target ended in the requested state and
	// at least one change was made.
	Completed Status = iota + 1
	// CompletedWithNoOp means nothing needed to change.
	CompletedWithNoOp
	// PartialSuccess means at least one target changed and at least one failed.
	PartialSuccess
	// Failed means no target changed and at least one failed, or the run was
	// rejected before any target was processed.
	Failed
)

// String returns the status name used in JSON output.
func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case CompletedWithNoOp:
		return "completed_noop"
	case PartialSuccess:
		return "partial_success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TargetResult records what happened to one target.
type TargetResult struct {
	Target target.Kind
	// Changed is set when a theme artifact was written or removed.
	Changed bool
	// Skipped is set when the target was not eligible and the request had
	// other targets to process.
	Skipped bool
	Err     error
}

// Outcome is the result of one run.
type Outcome struct {
	Status Status
	// Reason explains a Failed or PartialSuccess status.
	Reason  string
	Lines   []progress.Line
	Results []TargetResult
}

// Succeeded reports whether the run ended without failures.
func (o Outcome) Succeeded() bool {
	return o.Status == Completed || o.Status == CompletedWithNoOp
}

// Err joins every failure recorded in the outcome.
func (o Outcome) Err() error {
	var errs []error
	for _, res := range o.Results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return errors.Join(errs...)
}

func summarize(results []TargetResult) (Status, string) {
	failed := 0
	changed := 0
	var reasons []error
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			reasons = append(reasons, res.Err)
		case res.Changed:
			changed++
		}
	}
	var reason string
	if len(reasons) > 0 {
		reason = errors.Join(reasons...).Error()
	}
	switch {
	case failed > 0 && changed > 0:
		return PartialSuccess, reason
	case failed > 0:
		return Failed, reason
	case changed > 0:
		return Completed, ""
	default:
		return CompletedWithNoOp, ""
	}
}
