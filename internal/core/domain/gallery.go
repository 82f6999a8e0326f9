package domain

// GalleryInfo describes the gallery as a whole.
type GalleryInfo struct {
	Title                      string
	APIVersion                 string
	ExhibitsConfigured         bool
	HideGalleryWithoutExhibits bool
}
