// Package web embeds the page templates and static assets served by the
// HTTP server.
package web

import (
	"embed"
	"io/fs"
)

// StaticPrefix is the URL path prefix static assets are served under.
const StaticPrefix = "/static"

//go:embed templates/*.html
var TemplateFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

// StaticFiles returns the static assets rooted at the static directory, so
// "styles.css" resolves to static/styles.css.
func StaticFiles() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// Unreachable with a valid embed pattern.
		panic("failed to access embedded static assets: " + err.Error())
	}
	return sub
}
