package gh

import (
	"fmt"
	"net/http"
	"strings"

	"emperror.dev/errors"
	"github.com/google/go-github/v63/github"
	"github.com/stoner-cli/stoner/internal/utils/errutils"
)

// UpstreamError is returned when a GitHub endpoint responds with anything
// other than HTTP 200.
type UpstreamError struct {
	// Endpoint is the URL that was requested.
	Endpoint   string
	StatusCode int
	// Message is the "message" field of the response body, or the status text
	// if the body had none.
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GitHub API request for %s failed (%d): %s", e.Endpoint, e.StatusCode, e.Message)
}

// IsHTTPUnauthorized returns true if the given error is an HTTP 401 Unauthorized error.
func IsHTTPUnauthorized(err error) bool {
	if uerr, ok := errutils.As[*UpstreamError](err); ok {
		return uerr.StatusCode == http.StatusUnauthorized
	}
	// The GraphQL client doesn't export proper error types so we have to
	// check the string.
	return err != nil && strings.Contains(err.Error(), "401 Unauthorized")
}

// asUpstreamError converts the error types produced by go-github for non-2xx
// (and 202) responses. It returns nil for transport-level failures.
func asUpstreamError(endpoint string, err error) *UpstreamError {
	uerr := &UpstreamError{Endpoint: endpoint}
	var res *http.Response
	switch e := err.(type) {
	case *github.ErrorResponse:
		res, uerr.Message = e.Response, e.Message
	case *github.RateLimitError:
		res, uerr.Message = e.Response, e.Message
	case *github.AbuseRateLimitError:
		res, uerr.Message = e.Response, e.Message
	case *github.AcceptedError:
		uerr.StatusCode = http.StatusAccepted
		uerr.Message = http.StatusText(http.StatusAccepted)
		return uerr
	default:
		var errRes *github.ErrorResponse
		if errors.As(err, &errRes) {
			return asUpstreamError(endpoint, errRes)
		}
		return nil
	}
	if res != nil {
		uerr.StatusCode = res.StatusCode
	}
	if uerr.Message == "" {
		uerr.Message = http.StatusText(uerr.StatusCode)
	}
	return uerr
}
