// Package web holds the HTML templates shared by the CLI and the report server.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
