//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary. The go.mod tool block pins:
// - github.com/matryer/moq (mocks_test.go generation)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migrations; bookpass migrate embeds the same files)
