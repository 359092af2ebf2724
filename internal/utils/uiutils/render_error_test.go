package uiutils

import (
	"fmt"
	"net/http"
	"testing"

	"emperror.dev/errors"
	"github.com/stoner-cli/stoner/internal/credential"
	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stretchr/testify/assert"
)

func TestRenderError(t *testing.T) {
	assert.Equal(t, "error: boom\n", RenderError(errors.New("boom")))

	for _, err := range []error{
		errors.Wrap(credential.ErrCredentialUnavailable, "failed to read token"),
		&gh.UpstreamError{Endpoint: "https://api.github.com/user/repos", StatusCode: http.StatusUnauthorized, Message: "Bad credentials"},
	} {
		out := RenderError(err)
		assert.NotEqual(t, fmt.Sprintf("error: %s\n", err), out)
		assert.NotEmpty(t, out)
	}
}
