package templateutils

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/kr/text"
)

// String executes a template and returns the result as a string.
func String(t *template.Template, data interface{}) (string, error) {
	var buf = new(bytes.Buffer)
	err := t.Execute(buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Funcs are helpers shared by the markdown templates.
var Funcs = template.FuncMap{
	"indent": text.Indent,
	"join":   strings.Join,
	"trim":   strings.TrimSpace,
}
