package dto

// The types below are the wire contract of the gallery endpoints, shared by
// the server handlers and galleryclient. Optional fields are pointers so an
// absent field and an empty value stay distinguishable.

type GalleryReply struct {
	Title                      string `json:"title"`
	APIVersion                 string `json:"apiVersion"`
	ExhibitsConfigured         bool   `json:"exhibitsConfigured"`
	HideGalleryWithoutExhibits bool   `json:"hideGalleryWithoutExhibits"`
}

type Exhibit struct {
	// from configuration
	Homepage    *string `json:"homepage,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`

	// state observed by the server
	ID               int     `json:"id"`
	IsCloned         bool    `json:"isCloned"`
	LocalPath        string  `json:"localPath"`
	Revision         *string `json:"revision,omitempty"`
	LastUpdated      *string `json:"lastUpdated,omitempty"`
	UpdatesAvailable *bool   `json:"updatesAvailable,omitempty"`
}

type ExhibitsReply struct {
	Exhibits []Exhibit `json:"exhibits"`
}

type PullRequest struct {
	ExhibitID *int `json:"exhibit_id" binding:"required"`
}

type PullReply struct {
	Message string  `json:"message"`
	Exhibit Exhibit `json:"exhibit"`
}

type ErrorReply struct {
	Error string `json:"error"`
}
