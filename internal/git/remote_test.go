package git

import (
	"os"
	"path/filepath"
	"testing"

	"emperror.dev/errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T, remotes map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	for name, u := range remotes {
		_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{u}})
		require.NoError(t, err)
	}
	return dir
}

func TestOriginSlug(t *testing.T) {
	for _, tt := range []struct {
		url  string
		want string
	}{
		{"git@github.com:acme/widgets.git", "acme/widgets"},
		{"https://github.com/acme/widgets.git", "acme/widgets"},
		{"https://github.com/acme/widgets", "acme/widgets"},
		{"ssh://git@github.com/acme/widgets.git", "acme/widgets"},
	} {
		t.Run(tt.url, func(t *testing.T) {
			dir := initRepo(t, map[string]string{"origin": tt.url})
			slug, err := OriginSlug(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slug)
		})
	}
}

func TestOriginSlug_Subdirectory(t *testing.T) {
	dir := initRepo(t, map[string]string{"origin": "git@github.com:acme/widgets.git"})
	sub := filepath.Join(dir, "cmd", "widgets")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	slug, err := OriginSlug(sub)
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", slug)
}

func TestOpenRemote_NotFound(t *testing.T) {
	dir := initRepo(t, map[string]string{"upstream": "git@github.com:acme/widgets.git"})

	_, err := OriginSlug(dir)
	assert.True(t, errors.Is(err, ErrRemoteNotFound))

	remote, err := OpenRemote(dir, "upstream")
	require.NoError(t, err)
	assert.Equal(t, "upstream", remote.Label)
	assert.Equal(t, "github.com", remote.URL.Host)
}

func TestOpenRemote_NotARepository(t *testing.T) {
	_, err := OriginSlug(t.TempDir())
	assert.ErrorContains(t, err, "failed to open git repository")
}
