package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/salestrace/salestrace/internal/util"
)

// content holds our static content.
//
//go:embed templates
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
}

type templates struct {
	pages map[string]*template.Template
}

func (t templates) Render(w http.ResponseWriter, name string, data interface{}) {
	tmpl, ok := t.pages[name]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown template %s", name), http.StatusInternalServerError)
		return
	}

	err := tmpl.Execute(w, data)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func localFSDirectory() fs.FS {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return embeddedFS()
	}

	return os.DirFS(filepath.Join(filename, "../templates"))
}

func embeddedFS() fs.FS {
	subTemplateFS, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}

	return subTemplateFS
}

func (h *Handler) parseTemplates() error {
	var dir fs.FS

	if h.reload {
		dir = localFSDirectory()
	} else {
		dir = embeddedFS()
	}

	pages := map[string]*template.Template{}

	base, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(dir, "layout.html", "partials/detail.html")
	if err != nil {
		return err
	}

	dashboard, err := template.Must(base.Clone()).ParseFS(dir, "pages/dashboard.html")
	if err != nil {
		return err
	}
	pages["pages/dashboard.html"] = dashboard

	detail, err := template.New("detail.html").Funcs(templateFuncs).ParseFS(dir, "partials/detail.html")
	if err != nil {
		return err
	}
	pages["partials/detail.html"] = detail

	h.templates = templates{pages: pages}

	return nil
}
