package views

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"tutorbook-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Views holds one parsed template set per page, each paired with the shared
// layout.
type Views struct {
	Log   *zap.Logger
	pages map[string]*template.Template
}

func New(templateDir string, logger *zap.Logger) (*Views, error) {
	layout := filepath.Join(templateDir, "layout.html")
	pages, err := filepath.Glob(filepath.Join(templateDir, "*.html"))
	if err != nil {
		return nil, err
	}

	parsed := map[string]*template.Template{}
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}
		t, err := template.ParseFiles(layout, page)
		if err != nil {
			return nil, err
		}
		parsed[strings.TrimSuffix(name, ".html")] = t
	}

	return &Views{Log: logger, pages: parsed}, nil
}

func (v *Views) Render(w http.ResponseWriter, statusCode int, page string, data interface{}) {
	t, ok := v.pages[page]
	if !ok {
		v.Log.Error("views.Render unknown page", zap.String("page", page))
		http.Error(w, constvars.ErrClientSomethingWrong, constvars.StatusInternalServerError)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(statusCode)
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		v.Log.Error("views.Render template execution failed",
			zap.String("page", page),
			zap.Error(err),
		)
	}
}
