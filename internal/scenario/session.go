package scenario

import (
	"context"
	"net/http"
	"time"

	"gallery-service/internal/galleryclient"
)

const (
	DefaultBaseURL   = "http://gallery.test"
	DefaultNamespace = "jupyterlab-gallery"
)

type SessionOptions struct {
	BaseURL   string
	Namespace string
	// Fallback receives every request no route answers.
	Fallback http.RoundTripper
	// Launcher renders the gallery inside the launcher body.
	Launcher bool
}

// Session is one isolated scenario. Sessions share no state, so scenarios
// can run in parallel.
type Session struct {
	Fixtures  Fixtures
	Namespace string
	Router    *Router
	Client    *galleryclient.Client
	Host      *Host
}

func NewSession(fx Fixtures, opts SessionOptions) *Session {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}

	router := NewRouter(opts.Fallback)
	client := galleryclient.NewClient(opts.BaseURL, opts.Namespace, 10*time.Second,
		galleryclient.WithHTTPClient(&http.Client{Transport: router, Timeout: 10 * time.Second}))

	return &Session{
		Fixtures:  fx,
		Namespace: opts.Namespace,
		Router:    router,
		Client:    client,
		Host:      NewHost(client, opts.Launcher),
	}
}

// MockGallery mocks GET /gallery with the session defaults after applying o.
func (s *Session) MockGallery(o GalleryOverride) error {
	return MockGalleryEndpoint(s.Router, s.Namespace, s.Fixtures.Gallery, o)
}

// MockExhibits mocks GET /exhibits with the session defaults after applying o.
func (s *Session) MockExhibits(o ExhibitsOverride) error {
	return MockExhibitsEndpoint(s.Router, s.Namespace, s.Fixtures.Exhibits, o)
}

// Goto navigates the host. Mocks must be installed before calling it.
func (s *Session) Goto(ctx context.Context) (*Page, error) {
	return s.Host.Goto(ctx)
}

func (s *Session) Close() {
	s.Router.Close()
}
