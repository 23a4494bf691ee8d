package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS
)

// staticFS returns the embedded pages rooted at the static directory.
func staticFS() http.FileSystem {
	sub, err := fs.Sub(embeddedStaticFiles, "static")
	if err != nil {
		panic(err)
	}

	return http.FS(sub)
}
