package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sync"

	log "github.com/sirupsen/logrus"

	"gallery-service/internal/adapters/primary/http/dto"
)

// Producer builds the response for an intercepted request.
type Producer func(req *http.Request) (*http.Response, error)

type route struct {
	method  string
	pattern *regexp.Regexp
	produce Producer
}

// Router is an http.RoundTripper that answers requests from an ordered
// routing table and hands everything else to a fallback transport.
// The first matching route wins.
type Router struct {
	mu       sync.RWMutex
	routes   []route
	fallback http.RoundTripper
}

// NewRouter returns an empty router. A nil fallback means http.DefaultTransport.
func NewRouter(fallback http.RoundTripper) *Router {
	if fallback == nil {
		fallback = http.DefaultTransport
	}
	return &Router{fallback: fallback}
}

// Route installs a rule. It only affects requests issued afterwards.
func (r *Router) Route(method string, pattern *regexp.Regexp, produce Producer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route{method: method, pattern: pattern, produce: produce})
}

// Close removes every installed rule.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = nil
}

func (r *Router) RoundTrip(req *http.Request) (*http.Response, error) {
	if produce := r.match(req); produce != nil {
		log.WithFields(log.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).Debug("serving mocked response")
		return produce(req)
	}
	return r.fallback.RoundTrip(req)
}

func (r *Router) match(req *http.Request) Producer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rt := range r.routes {
		if rt.method == req.Method && rt.pattern.MatchString(req.URL.Path) {
			return rt.produce
		}
	}
	return nil
}

// JSONProducer answers with a fixed JSON body. The body is encoded when the
// producer is created, so later changes to v are not observed.
func JSONProducer(status int, v interface{}) (Producer, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal mock body: %w", err)
	}
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
			StatusCode:    status,
			Proto:         "HTTP/1.1",
			ProtoMajor:    1,
			ProtoMinor:    1,
			Header:        http.Header{"Content-Type": []string{"application/json"}},
			Body:          io.NopCloser(bytes.NewReader(body)),
			ContentLength: int64(len(body)),
			Request:       req,
		}, nil
	}, nil
}

// EndpointPattern matches the path of a namespaced gallery endpoint.
func EndpointPattern(namespace, endpoint string) *regexp.Regexp {
	return regexp.MustCompile("/" + regexp.QuoteMeta(namespace) + "/" + regexp.QuoteMeta(endpoint) + "$")
}

// MockGalleryEndpoint answers GET /<namespace>/gallery with the defaults
// after applying o. Writes to the same path are not mocked.
func MockGalleryEndpoint(r *Router, namespace string, defaults dto.GalleryReply, o GalleryOverride) error {
	produce, err := JSONProducer(http.StatusOK, ApplyGalleryOverride(defaults, o))
	if err != nil {
		return err
	}
	r.Route(http.MethodGet, EndpointPattern(namespace, "gallery"), produce)
	return nil
}

// MockExhibitsEndpoint answers GET /<namespace>/exhibits with the defaults
// after applying o. Writes to the same path are not mocked.
func MockExhibitsEndpoint(r *Router, namespace string, defaults dto.ExhibitsReply, o ExhibitsOverride) error {
	reply := ApplyExhibitsOverride(defaults, o)
	if reply.Exhibits == nil {
		reply.Exhibits = []dto.Exhibit{}
	}
	produce, err := JSONProducer(http.StatusOK, reply)
	if err != nil {
		return err
	}
	r.Route(http.MethodGet, EndpointPattern(namespace, "exhibits"), produce)
	return nil
}
