package galleryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	log "github.com/sirupsen/logrus"

	"gallery-service/internal/adapters/primary/http/dto"
)

// SupportedAPIVersions is the range of gallery apiVersion values this client understands.
const SupportedAPIVersions = ">= 1.0, < 2.0"

var (
	ErrUnexpectedStatus       = errors.New("unexpected response status")
	ErrIncompatibleAPIVersion = errors.New("incompatible gallery api version")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	namespace  string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to route
// requests through a custom transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL, namespace string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		namespace: strings.Trim(namespace, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Gallery fetches the gallery settings and checks the reported apiVersion.
func (c *Client) Gallery(ctx context.Context) (*dto.GalleryReply, error) {
	var reply dto.GalleryReply
	if err := c.do(ctx, http.MethodGet, "gallery", nil, &reply); err != nil {
		return nil, err
	}
	if err := CheckAPIVersion(reply.APIVersion); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Exhibits fetches the exhibit list in display order.
func (c *Client) Exhibits(ctx context.Context) (*dto.ExhibitsReply, error) {
	var reply dto.ExhibitsReply
	if err := c.do(ctx, http.MethodGet, "exhibits", nil, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Pull asks the server to clone or update an exhibit.
func (c *Client) Pull(ctx context.Context, exhibitID int) (*dto.PullReply, error) {
	var reply dto.PullReply
	if err := c.do(ctx, http.MethodPost, "pull", dto.PullRequest{ExhibitID: &exhibitID}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// CheckAPIVersion accepts any version within SupportedAPIVersions.
func CheckAPIVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIncompatibleAPIVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedAPIVersions)
	if err != nil {
		return fmt.Errorf("parse supported versions: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: server reports %s, client supports %s", ErrIncompatibleAPIVersion, v, SupportedAPIVersions)
	}
	return nil
}

func (c *Client) endpoint(name string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.namespace, name)
}

func (c *Client) do(ctx context.Context, method, name string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.endpoint(name)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.WithFields(log.Fields{
		"method": method,
		"url":    url,
	}).Debug("requesting gallery endpoint")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errReply dto.ErrorReply
		_ = json.Unmarshal(data, &errReply)
		return fmt.Errorf("%w: %s %s: %d %s", ErrUnexpectedStatus, method, name, resp.StatusCode, errReply.Error)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", name, err)
	}
	return nil
}
