package config

import (
	"os"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/spf13/viper"
)

type GitHub struct {
	// Token takes precedence over TokenFile when set (usually through the
	// environment).
	Token     string
	TokenFile string
	// BaseUrl is the root of the REST API. It always ends with a slash.
	BaseUrl string
}

type Search struct {
	PageSize int
	// MaxDelay is the upper bound (exclusive) of the random delay applied to
	// every search response.
	MaxDelay time.Duration
}

type Report struct {
	// Format is one of markdown, html or terminal.
	Format      string
	OpenBrowser bool
}

const DefaultBaseUrl = "https://api.github.com/"

var Stoner = struct {
	GitHub GitHub
	Search Search
	Report Report
}{
	GitHub: GitHub{
		TokenFile: ".github-token",
		BaseUrl:   DefaultBaseUrl,
	},
	Search: Search{
		PageSize: 5,
		MaxDelay: 300 * time.Millisecond,
	},
	Report: Report{
		Format: "markdown",
	},
}

// Load initializes the configuration values.
// Returns a boolean indicating whether or not a config file was loaded and an
// error if one occurred.
func Load() (bool, error) {
	loaded, err := loadFromFile()
	loadFromEnv()
	Stoner.GitHub.BaseUrl = normalizeBaseUrl(Stoner.GitHub.BaseUrl)
	return loaded, err
}

func loadFromFile() (bool, error) {
	config := viper.New()
	config.SetConfigName("config")

	config.AddConfigPath("$XDG_CONFIG_HOME/stoner")
	config.AddConfigPath("$HOME/.config/stoner")
	config.AddConfigPath("$HOME/.stoner")
	if home := os.Getenv("STONER_HOME"); home != "" {
		config.AddConfigPath(home)
	}

	if err := config.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return false, nil
		}
		return false, err
	}

	if err := config.Unmarshal(&Stoner); err != nil {
		return true, errors.Wrap(err, "failed to read stoner configs")
	}

	return true, nil
}

func loadFromEnv() {
	if githubToken := os.Getenv("STONER_GITHUB_TOKEN"); githubToken != "" {
		Stoner.GitHub.Token = githubToken
	} else if githubToken := os.Getenv("GITHUB_TOKEN"); githubToken != "" {
		Stoner.GitHub.Token = githubToken
	}
	if baseUrl := os.Getenv("STONER_GITHUB_BASE_URL"); baseUrl != "" {
		Stoner.GitHub.BaseUrl = baseUrl
	}
}

func normalizeBaseUrl(u string) string {
	if u == "" {
		return DefaultBaseUrl
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}
