// Package credential locates the GitHub access token used to authorize every
// upstream request.
package credential

import (
	"os"
	"path/filepath"
	"strings"

	"emperror.dev/errors"
	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

var ErrCredentialUnavailable = errors.Sentinel("no GitHub token is available")

// Source describes where a token may come from. Token wins over File.
type Source struct {
	Token string
	// File is read when Token is empty. Relative paths are resolved against
	// the working directory first and then against the XDG config directory
	// ($XDG_CONFIG_HOME/stoner/github-token).
	File string
}

// Load returns the token with any trailing newline removed. It returns an
// error wrapping ErrCredentialUnavailable if no token could be read.
func Load(src Source) (string, error) {
	if src.Token != "" {
		return src.Token, nil
	}
	if src.File == "" {
		return "", ErrCredentialUnavailable
	}

	bs, err := os.ReadFile(src.File)
	if err != nil && errors.Is(err, os.ErrNotExist) && !filepath.IsAbs(src.File) {
		if pth, serr := xdg.SearchConfigFile(filepath.Join("stoner", "github-token")); serr == nil {
			logrus.WithField("path", pth).Debug("using token file from config directory")
			bs, err = os.ReadFile(pth)
		}
	}
	if err != nil {
		return "", errors.Wrapf(ErrCredentialUnavailable, "failed to read token file %q: %v", src.File, err)
	}

	token := strings.TrimRight(string(bs), "\r\n")
	if token == "" {
		return "", errors.Wrapf(ErrCredentialUnavailable, "token file %q is empty", src.File)
	}
	return token, nil
}
