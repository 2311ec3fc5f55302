package static

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed dist/*
var dist embed.FS

// Handler serves the compiled frontend assets with an index.html fallback
// for SPA routes.
func Handler() http.Handler {
	return NewHandler(dist)
}

// NewHandler serves frontend assets from the given filesystem, which must
// contain a dist/ directory.
func NewHandler(fsys fs.FS) http.Handler {
	sub, err := fs.Sub(fsys, "dist")
	if err != nil {
		return missingAssets()
	}
	if _, err := fs.Stat(sub, "index.html"); err != nil {
		return missingAssets()
	}

	fileServer := http.FileServer(http.FS(sub))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upath := strings.TrimPrefix(r.URL.Path, "/")
		if upath == "" {
			upath = "index.html"
		}
		if _, err := fs.Stat(sub, upath); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}
		r2 := *r
		r2.URL.Path = "/index.html"
		fileServer.ServeHTTP(w, &r2)
	})
}

func missingAssets() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "frontend assets not found - build the web app", http.StatusNotFound)
	})
}
