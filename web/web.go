// Package web embeds the HTML templates and static assets served by cmd/api.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views static
var assets embed.FS

// Views returns the template tree rooted at views/.
func Views() fs.FS {
	sub, err := fs.Sub(assets, "views")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
