// Package report renders the categorized issues of a milestone.
package report

import (
	"encoding/json"
	"io"
	"text/template"

	"emperror.dev/errors"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/russross/blackfriday/v2"
	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/milestone"
	"github.com/stoner-cli/stoner/internal/utils/templateutils"
	"github.com/stoner-cli/stoner/internal/utils/timeutils"
	"gopkg.in/yaml.v3"
)

// Data is everything a report is rendered from.
type Data struct {
	Repository string                      `json:"repository" yaml:"repository"`
	Milestone  gh.MilestoneInfo            `json:"milestone" yaml:"milestone"`
	Issues     milestone.CategorizedIssues `json:"issues" yaml:"issues"`
}

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatTerminal Format = "terminal"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatMarkdown, FormatHTML, FormatTerminal:
		return f, nil
	case "md", "":
		return FormatMarkdown, nil
	}
	return "", errors.Errorf("unknown report format %q (expected markdown, html or terminal)", s)
}

type section struct {
	Name   string
	Issues []gh.Issue
}

var markdownTemplate = template.Must(template.New("report").Funcs(templateutils.Funcs).Funcs(template.FuncMap{
	"date":     timeutils.FormatDate,
	"local":    timeutils.FormatLocal,
	"relative": timeutils.FormatRelative,
	"section": func(name string, issues []gh.Issue) section {
		return section{name, issues}
	},
}).Parse(`# {{ .Milestone.Title }} ({{ .Repository }})
{{- with trim .Milestone.Description }}

{{ indent . "> " }}
{{- end }}

| | |
|---|---|
| Milestone | [#{{ .Milestone.Number }}]({{ .Milestone.Locator }}) |
| Creator | @{{ .Milestone.CreatorLogin }} |
| Open issues | {{ .Milestone.OpenIssueCount }} |
| Closed issues | {{ .Milestone.ClosedIssueCount }} |
| Created | {{ local .Milestone.CreatedAt }} ({{ relative .Milestone.CreatedAt }}) |
| Updated | {{ local .Milestone.UpdatedAt }} ({{ relative .Milestone.UpdatedAt }}) |
| Due | {{ date .Milestone.DueAt }} |
| Closed | {{ local .Milestone.ClosedAt }} |
{{ template "section" (section "Bugs" .Issues.Bug) }}
{{- template "section" (section "Features" .Issues.Feature) }}
{{- template "section" (section "Upkeep" .Issues.Upkeep) }}
{{- define "section" }}
## {{ .Name }}

{{ range .Issues -}}
- [#{{ .Number }}]({{ .Locator }}) {{ .Title }} (@{{ .CreatorLogin }}{{ if .Labels }}; {{ join .Labels ", " }}{{ end }}){{ if not .ClosedAt.IsZero }}, closed {{ relative .ClosedAt }}{{ end }}
{{ else -}}
_No issues._
{{ end -}}
{{ end }}`))

// Markdown renders the report as a markdown document.
func Markdown(data *Data) (string, error) {
	out, err := templateutils.String(markdownTemplate, data)
	if err != nil {
		return "", errors.Wrap(err, "failed to render report")
	}
	return out, nil
}

// HTML renders the report as an HTML fragment.
func HTML(data *Data) (string, error) {
	md, err := Markdown(data)
	if err != nil {
		return "", err
	}
	return string(blackfriday.Run([]byte(md))), nil
}

// Terminal renders the report for display in a terminal.
func Terminal(data *Data) (string, error) {
	md, err := Markdown(data)
	if err != nil {
		return "", err
	}
	style := styles.LightStyle
	if lipgloss.HasDarkBackground() {
		style = styles.DarkStyle
	}
	return glamour.Render(md, style)
}

// Render renders the report in the given format.
func Render(data *Data, format Format) (string, error) {
	switch format {
	case FormatHTML:
		return HTML(data)
	case FormatTerminal:
		return Terminal(data)
	default:
		return Markdown(data)
	}
}

// Encode writes v to w as json or yaml.
func Encode(w io.Writer, output string, v any) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return errors.Errorf("unknown output format %q (expected json or yaml)", output)
}
