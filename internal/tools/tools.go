//go:build tools

// Package tools pins development tools (test runner, linter) to the versions
// recorded in go.mod.
package tools

import (
	_ "github.com/golangci/golangci-lint/v2/cmd/golangci-lint"
	_ "gotest.tools/gotestsum"
)
