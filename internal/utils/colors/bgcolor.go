package colors

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SetupBackgroundColorTypeFromEnv initializes the background color setting based on
// STONER_HAS_LIGHT_BG environment variable.
//
// lipgloss reads COLORFGBG when the terminal sets it, but that isn't always
// reliable, so the background type can be forced. It affects both the prompt
// styles and the glamour style used for terminal reports.
func SetupBackgroundColorTypeFromEnv() {
	switch strings.ToLower(os.Getenv("STONER_HAS_LIGHT_BG")) {
	case "true", "1", "yes", "y", "on":
		lipgloss.SetHasDarkBackground(false)
	case "false", "0", "no", "n", "off":
		lipgloss.SetHasDarkBackground(true)
	}
}
