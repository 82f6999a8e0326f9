package domain

import (
	"strings"
	"time"
)

// APIVersion is reported by the gallery endpoint. Clients accept any 1.x.
const APIVersion = "1.0"

// ============================================================================
// Value Objects
// ============================================================================

// ExhibitSource is one entry of the exhibit catalog as configured on the server.
type ExhibitSource struct {
	Git         string  `json:"git" yaml:"git"`
	Homepage    string  `json:"homepage,omitempty" yaml:"homepage"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description,omitempty" yaml:"description"`
	Icon        *string `json:"icon,omitempty" yaml:"icon"`
	Branch      string  `json:"branch,omitempty" yaml:"branch"`
	Depth       int     `json:"depth,omitempty" yaml:"depth"`
}

// Validate checks the fields every exhibit needs to be listed and cloned.
func (s ExhibitSource) Validate() error {
	if strings.TrimSpace(s.Git) == "" || strings.TrimSpace(s.Title) == "" {
		return ErrInvalidExhibitSource
	}
	return nil
}

// RepoState is what git inspection observed for an exhibit's local checkout.
type RepoState struct {
	Cloned           bool
	Revision         string
	LastUpdated      time.Time
	UpdatesAvailable bool
}

// SyncAction is what a sync did to a checkout.
type SyncAction string

const (
	SyncCloned   SyncAction = "cloned"
	SyncUpdated  SyncAction = "updated"
	SyncUpToDate SyncAction = "up to date"
)

// ============================================================================
// Entities
// ============================================================================

// Exhibit is a catalog entry combined with its observed checkout state.
// ID is the position of the source in the catalog.
type Exhibit struct {
	ID        int
	Source    ExhibitSource
	Icon      *string
	LocalPath string
	State     RepoState
}
