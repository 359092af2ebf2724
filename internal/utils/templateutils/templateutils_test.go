package templateutils_test

import (
	"testing"
	"text/template"

	"github.com/stoner-cli/stoner/internal/utils/templateutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tmpl := template.Must(template.New("t").Funcs(templateutils.Funcs).Parse(
		`{{ join .Labels ", " }}|{{ indent .Body "> " }}`,
	))
	out, err := templateutils.String(tmpl, map[string]any{
		"Labels": []string{"a", "b"},
		"Body":   "one\ntwo",
	})
	require.NoError(t, err)
	assert.Equal(t, "a, b|> one\n> two", out)
}
