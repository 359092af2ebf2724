package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestCommand(t *testing.T) {
	const url = "https://github.com/acme/widgets/milestone/3"
	for _, tt := range []struct {
		name string
		goos string
		env  map[string]string
		want []string
	}{
		{"browser env", "linux", map[string]string{"BROWSER": `firefox --new-tab`}, []string{"firefox", "--new-tab", url}},
		{"quoted browser env", "linux", map[string]string{"BROWSER": `"/opt/my browser/run" -x`}, []string{"/opt/my browser/run", "-x", url}},
		{"darwin", "darwin", nil, []string{"/usr/bin/open", url}},
		{"windows", "windows", nil, []string{"cmd", "/c", "start", url}},
		{"linux desktop", "linux", map[string]string{"DISPLAY": ":0"}, []string{"xdg-open", url}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			args, err := Command(tt.goos, env(tt.env), url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, args)
		})
	}
}

func TestCommand_NoBrowser(t *testing.T) {
	_, err := Command("linux", env(nil), "https://github.com")
	assert.ErrorIs(t, err, ErrNoBrowser)
}
