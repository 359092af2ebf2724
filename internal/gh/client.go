package gh

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/google/go-github/v63/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"github.com/stoner-cli/stoner/internal/utils/logutils"
	"golang.org/x/oauth2"
)

type Client struct {
	httpClient *http.Client
	rest       *github.Client
	gql        *githubv4.Client
	root       *url.URL
}

// NewClient creates a client for the GitHub API rooted at baseUrl (e.g.,
// https://api.github.com/). Every request is authorized with
// "Authorization: token <token>".
func NewClient(ctx context.Context, token string, baseUrl string) (*Client, error) {
	if token == "" {
		return nil, errors.Errorf("no GitHub token provided (do you need to configure one?)")
	}
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	root, err := url.Parse(baseUrl)
	if err != nil {
		return nil, errors.WrapIff(err, "invalid GitHub API base URL %q", baseUrl)
	}

	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: "token"},
	)
	httpClient := oauth2.NewClient(ctx, src)

	rest := github.NewClient(httpClient)
	rest.BaseURL = root
	gql := githubv4.NewEnterpriseClient(root.JoinPath("graphql").String(), httpClient)
	return &Client{httpClient, rest, gql, root}, nil
}

// Root returns the REST API root. It always ends with a slash.
func (c *Client) Root() string {
	return c.root.String()
}

// Locator returns the absolute URL for a path relative to the API root
// (e.g., "user/repos").
func (c *Client) Locator(path string) string {
	return c.root.String() + strings.TrimPrefix(path, "/")
}

// HTTPClient returns the authorized HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

func (c *Client) query(ctx context.Context, query any, variables map[string]any) (reterr error) {
	log := logrus.WithFields(logrus.Fields{
		"variables": logutils.Format("%#+v", variables),
	})
	log.Debug("executing GitHub API query...")
	startTime := time.Now()
	defer func() {
		log := log.WithFields(logrus.Fields{
			"elapsed": time.Since(startTime),
			"result":  logutils.Format("%#+v", query),
		})
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub API query failed")
		} else {
			log.Debug("GitHub API query succeeded")
		}
	}()
	return c.gql.Query(ctx, query, variables)
}

// restGet executes a GET request against an absolute API URL (or a path
// relative to the API root) and unmarshals the response into result.
// Only HTTP 200 is considered a success; any other status is reported as an
// *UpstreamError carrying the response's message.
func (c *Client) restGet(ctx context.Context, locator string, result any) error {
	startTime := time.Now()
	log := logrus.WithField("url", locator)

	req, err := c.rest.NewRequest(http.MethodGet, locator, nil)
	if err != nil {
		return errors.WrapIff(err, "failed to create request for %s", locator)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug("executing GitHub API request...")
	res, err := c.rest.Do(ctx, req, result)
	log = log.WithField("elapsed", time.Since(startTime))
	if err != nil {
		if uerr := asUpstreamError(locator, err); uerr != nil {
			log.WithFields(logrus.Fields{
				"status":  uerr.StatusCode,
				"message": logutils.Truncate(uerr.Message, 200),
			}).Debug("GitHub API request failed")
			return uerr
		}
		log.WithError(err).Debug("GitHub API request failed")
		return errors.WrapIff(err, "GitHub API request for %s failed", locator)
	}
	if res.StatusCode != http.StatusOK {
		log.WithField("status", res.StatusCode).Debug("GitHub API request returned unexpected status")
		return &UpstreamError{
			Endpoint:   locator,
			StatusCode: res.StatusCode,
			Message:    http.StatusText(res.StatusCode),
		}
	}
	log.WithField("status", res.StatusCode).Debug("GitHub API request completed")
	return nil
}
