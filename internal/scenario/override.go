package scenario

import "gallery-service/internal/adapters/primary/http/dto"

// GalleryOverride is a partial gallery reply. A non-nil field replaces the
// default value; a nil field keeps it.
type GalleryOverride struct {
	Title                      *string
	APIVersion                 *string
	ExhibitsConfigured         *bool
	HideGalleryWithoutExhibits *bool
}

// ExhibitsOverride is a partial exhibits reply. Overrides are shallow: a
// non-nil Exhibits replaces the whole default list, it is never merged or
// appended.
type ExhibitsOverride struct {
	Exhibits *[]dto.Exhibit
}

// WithExhibits overrides the exhibit list with exactly the given records.
func WithExhibits(exhibits ...dto.Exhibit) ExhibitsOverride {
	list := cloneExhibits(exhibits)
	if list == nil {
		list = []dto.Exhibit{}
	}
	return ExhibitsOverride{Exhibits: &list}
}

// WithTitle overrides only the gallery title.
func WithTitle(title string) GalleryOverride {
	return GalleryOverride{Title: &title}
}

func ApplyGalleryOverride(def dto.GalleryReply, o GalleryOverride) dto.GalleryReply {
	out := def
	if o.Title != nil {
		out.Title = *o.Title
	}
	if o.APIVersion != nil {
		out.APIVersion = *o.APIVersion
	}
	if o.ExhibitsConfigured != nil {
		out.ExhibitsConfigured = *o.ExhibitsConfigured
	}
	if o.HideGalleryWithoutExhibits != nil {
		out.HideGalleryWithoutExhibits = *o.HideGalleryWithoutExhibits
	}
	return out
}

func ApplyExhibitsOverride(def dto.ExhibitsReply, o ExhibitsOverride) dto.ExhibitsReply {
	if o.Exhibits != nil {
		return dto.ExhibitsReply{Exhibits: cloneExhibits(*o.Exhibits)}
	}
	return dto.ExhibitsReply{Exhibits: cloneExhibits(def.Exhibits)}
}
