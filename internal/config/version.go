package config

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	"golang.org/x/mod/semver"
)

const VersionDev = "<dev>"

// Version is the version of the stoner application.
// It is set automatically when creating release builds.
var Version = VersionDev

const latestReleaseUrl = "https://api.github.com/repos/stoner-cli/stoner/releases/latest"

// FetchLatestVersion returns the name of the latest published release.
func FetchLatestVersion(ctx context.Context, httpClient *http.Client, url string) (string, error) {
	if url == "" {
		url = latestReleaseUrl
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to fetch latest release")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("failed to fetch latest release: %s", res.Status)
	}

	var data struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return "", errors.Wrap(err, "failed to decode latest release")
	}
	return data.Name, nil
}

// IsNewerVersion reports whether latest is a strictly newer semantic version
// than current. Development builds and unparseable versions are never
// considered outdated.
func IsNewerVersion(current, latest string) bool {
	if current == VersionDev {
		return false
	}
	current, latest = canonical(current), canonical(latest)
	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}
	return semver.Compare(latest, current) > 0
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
