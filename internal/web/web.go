package web

import (
	"embed"
)

// Embed the templates and the static assets (placeholder image).
// Paths are relative to this file (internal/web/web.go).
//
//go:embed templates static
var Assets embed.FS
