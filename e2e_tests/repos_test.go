package e2e_tests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepos(t *testing.T) {
	srv := RunMockGitHub(t)

	out := RequireStoner(t, srv, "repos")
	assert.Equal(t, "alpha\nbeta\ngamma\n", out.Stdout)

	out = RequireStoner(t, srv, "repos", "ga")
	assert.Equal(t, "gamma\n", out.Stdout)

	out = RequireStoner(t, srv, "repos", "zzz")
	assert.Empty(t, out.Stdout)

	out = RequireStoner(t, srv, "repos", "--output", "json")
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out.Stdout), &names))
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}

func TestRepos_OrganizationsNotFound(t *testing.T) {
	srv := RunMockGitHub(t)
	srv.HandleResponse("user/orgs", ghtestNotFound)

	out := Stoner(t, srv, "repos")
	assert.Equal(t, 1, out.ExitCode)
	assert.Empty(t, out.Stdout)
	assert.Contains(t, out.Stderr, "Not Found")
}

func TestRepos_NoToken(t *testing.T) {
	srv := RunMockGitHub(t)

	out := Cmd(t, []string{
		"STONER_GITHUB_BASE_URL=" + srv.Root(),
		"STONER_GITHUB_TOKEN=",
	}, stonerCmdPath, "repos")
	assert.Equal(t, 1, out.ExitCode)
	assert.Empty(t, srv.Requests())
}
