package uiutils

import (
	"fmt"

	"emperror.dev/errors"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stoner-cli/stoner/internal/credential"
	"github.com/stoner-cli/stoner/internal/gh"
)

const noGitHubToken = `# ERROR: No GitHub Token

` + "`stoner`" + ` needs a GitHub API token to list your repositories and milestones. There are two ways to provide one:

1. Put the token in a file named ` + "`.github-token`" + ` in the current directory (or ` + "`$XDG_CONFIG_HOME/stoner/github-token`" + `).
2. Set the ` + "`STONER_GITHUB_TOKEN`" + ` or ` + "`GITHUB_TOKEN`" + ` environment variable.

The token needs the ` + "`repo`" + ` and ` + "`read:org`" + ` scopes to see private and organization repositories.
`

const unauthorizedToken = `# ERROR: GitHub rejected the token

GitHub answered ` + "`401 Unauthorized`" + `. The token may have expired or been revoked.
Create a new Personal Access Token and update your token file or environment.
Run ` + "`stoner auth status`" + ` to check it.
`

// RenderError returns err as it should be shown to the user. Well-known
// errors are rendered as markdown with instructions.
func RenderError(err error) string {
	var style string
	if lipgloss.HasDarkBackground() {
		style = styles.DarkStyle
	} else {
		style = styles.LightStyle
	}
	var markdownText string
	if errors.Is(err, credential.ErrCredentialUnavailable) {
		markdownText = noGitHubToken
	} else if gh.IsHTTPUnauthorized(err) {
		markdownText = unauthorizedToken
	}

	if markdownText != "" {
		if out, rerr := glamour.Render(markdownText, style); rerr == nil {
			return out
		}
		// If there's an error, fallback to the plaintext message.
	}
	return fmt.Sprintf("error: %s\n", err)
}
