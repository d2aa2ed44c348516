// Package web holds the embedded HTML templates.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var files embed.FS

// Templates returns the template tree rooted at templates/.
func Templates() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Engine returns a fiber view engine over the embedded templates.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(Templates()), ".html")
}
