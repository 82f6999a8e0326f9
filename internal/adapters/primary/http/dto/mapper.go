package dto

import (
	"time"

	"gallery-service/internal/core/domain"
)

const timeFormat = time.RFC3339

func ToGalleryReply(g *domain.GalleryInfo) GalleryReply {
	return GalleryReply{
		Title:                      g.Title,
		APIVersion:                 g.APIVersion,
		ExhibitsConfigured:         g.ExhibitsConfigured,
		HideGalleryWithoutExhibits: g.HideGalleryWithoutExhibits,
	}
}

// ToExhibit maps an exhibit to its wire form. lastUpdated and
// updatesAvailable are only reported for cloned exhibits.
func ToExhibit(e domain.Exhibit) Exhibit {
	resp := Exhibit{
		Homepage:    optional(e.Source.Homepage),
		Title:       e.Source.Title,
		Description: optional(e.Source.Description),
		Icon:        e.Icon,
		ID:          e.ID,
		IsCloned:    e.State.Cloned,
		LocalPath:   e.LocalPath,
		Revision:    optional(e.State.Revision),
	}

	if e.State.Cloned {
		if !e.State.LastUpdated.IsZero() {
			ts := e.State.LastUpdated.Format(timeFormat)
			resp.LastUpdated = &ts
		}
		updates := e.State.UpdatesAvailable
		resp.UpdatesAvailable = &updates
	}

	return resp
}

func ToExhibitsReply(exhibits []domain.Exhibit) ExhibitsReply {
	items := make([]Exhibit, 0, len(exhibits))
	for _, e := range exhibits {
		items = append(items, ToExhibit(e))
	}
	return ExhibitsReply{Exhibits: items}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
