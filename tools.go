//go:build tools

package tools

// CLI tools used during development, pinned here for reference:
// - github.com/matryer/moq (mocks: go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose (migrations outside the server)
