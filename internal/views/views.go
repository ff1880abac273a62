package views

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// Funcs テンプレートで使う関数
var Funcs = template.FuncMap{
	"formatTime": formatTime,
}

// Load 埋め込まれたテンプレートをすべて読み込む
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "templates/*.html")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Mon Jan 2, 2006, 3:04 PM")
}
