// Package ghtest provides a mock GitHub REST server for tests.
package ghtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Response is a canned reply for one request URI.
type Response struct {
	Status int
	Body   any
	// Before runs before the response is written. Tests use it to control
	// the completion order of concurrent requests.
	Before func()
}

// Server is an httptest.Server that answers GitHub REST requests from a table
// of canned responses keyed by request URI (path plus raw query).
type Server struct {
	t *testing.T

	mu        sync.Mutex
	responses map[string]Response
	requests  []*http.Request

	*httptest.Server
}

func RunMockGitHubServer(t *testing.T) *Server {
	s := &Server{t: t, responses: map[string]Response{}}
	s.Server = httptest.NewServer(s)
	t.Cleanup(s.Close)
	return s
}

// Root returns the API root (with a trailing slash) to configure clients with.
func (s *Server) Root() string {
	return s.URL + "/"
}

// Locator returns the absolute URL for a request URI.
func (s *Server) Locator(uri string) string {
	return s.URL + "/" + strings.TrimPrefix(uri, "/")
}

// Handle registers a 200 response with the given JSON body.
func (s *Server) Handle(uri string, body any) {
	s.HandleResponse(uri, Response{Status: http.StatusOK, Body: body})
}

func (s *Server) HandleResponse(uri string, res Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses["/"+strings.TrimPrefix(uri, "/")] = res
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// RequestCount returns how many requests were made for a request URI.
func (s *Server) RequestCount(uri string) int {
	uri = "/" + strings.TrimPrefix(uri, "/")
	n := 0
	for _, r := range s.Requests() {
		if r.URL.RequestURI() == uri {
			n++
		}
	}
	return n
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r)
	res, ok := s.responses[r.URL.RequestURI()]
	s.mu.Unlock()

	if !ok {
		s.t.Logf("Received unexpected request: %s", r.URL.RequestURI())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		return
	}
	if res.Before != nil {
		res.Before()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	if res.Body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(res.Body); err != nil {
		s.t.Logf("Failed to encode response: %v", err)
	}
}

// Repo returns a JSON repository payload as returned by the REST API.
func (s *Server) Repo(owner, name string) map[string]any {
	return map[string]any{
		"name":      name,
		"full_name": owner + "/" + name,
		"url":       s.Locator("repos/" + owner + "/" + name),
		"html_url":  "https://github.com/" + owner + "/" + name,
	}
}

// Org returns a JSON organization payload whose repos_url points at this server.
func (s *Server) Org(login string) map[string]any {
	return map[string]any{
		"login":     login,
		"repos_url": s.Locator("orgs/" + login + "/repos"),
	}
}

// Repos returns repository payloads for the given names under owner.
func (s *Server) Repos(owner string, names ...string) []map[string]any {
	ret := make([]map[string]any, 0, len(names))
	for _, n := range names {
		ret = append(ret, s.Repo(owner, n))
	}
	return ret
}
