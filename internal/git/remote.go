// Package git reads repository information from a local checkout.
package git

import (
	"net/url"
	"strings"

	"emperror.dev/errors"
	giturls "github.com/chainguard-dev/git-urls"
	gogit "github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"
)

const DefaultRemote = "origin"

var ErrRemoteNotFound = errors.Sentinel("git remote not found")

type Remote struct {
	Label string
	URL   *url.URL
	// The URL slug that corresponds to repository.
	// For example, github.com/my-org/my-repo becomes my-org/my-repo.
	RepoSlug string
}

// OpenRemote reads the remote with the given label from the repository that
// contains dir.
func OpenRemote(dir string, label string) (*Remote, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.WrapIff(err, "failed to open git repository at %s", dir)
	}
	remote, err := repo.Remote(label)
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return nil, errors.Errorf("%w: %q", ErrRemoteNotFound, label)
	} else if err != nil {
		return nil, errors.WrapIff(err, "failed to read git remote %q", label)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return nil, errors.Errorf("git remote %q has no URL", label)
	}
	return parseRemote(label, urls[0])
}

func parseRemote(label string, remoteUrl string) (*Remote, error) {
	u, err := giturls.Parse(remoteUrl)
	if err != nil {
		return nil, errors.WrapIff(err, "failed to parse remote url %q", remoteUrl)
	}

	repoSlug := strings.TrimSuffix(u.Path, ".git")
	repoSlug = strings.TrimPrefix(repoSlug, "/")
	logrus.WithFields(logrus.Fields{
		"remote": label,
		"url":    remoteUrl,
		"slug":   repoSlug,
	}).Debug("read git remote")
	return &Remote{
		Label:    label,
		URL:      u,
		RepoSlug: repoSlug,
	}, nil
}

// OriginSlug returns the <owner>/<repo> slug of the origin remote of the
// repository that contains dir.
func OriginSlug(dir string) (string, error) {
	remote, err := OpenRemote(dir, DefaultRemote)
	if err != nil {
		return "", err
	}
	return remote.RepoSlug, nil
}
