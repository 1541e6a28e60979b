// Package ui carries the embedded HTML templates so the server binary is
// self-contained.
package ui

import "embed"

//go:embed templates
var Files embed.FS
