package render

import (
	"fmt"
	"html/template"
	"io"

	"gallery-service/internal/adapters/primary/http/dto"
)

// PlaceholderIcon is shown for exhibits whose icon is absent or empty.
const PlaceholderIcon template.URL = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCAxNiAxNiI+PHJlY3Qgd2lkdGg9IjE2IiBoZWlnaHQ9IjE2IiBmaWxsPSIjZTBlMGUwIi8+PC9zdmc+"

const (
	ClassGallery           = "jp-Gallery"
	ClassExhibit           = "jp-Exhibit"
	ClassIcon              = "jp-Exhibit-icon"
	ClassClonedIndicator   = "jp-Exhibit-clonedIndicator"
	ClassUpdatesIndicator  = "jp-Exhibit-updatesIndicator"
	ClassLauncherBody      = "jp-LauncherBody"
	ClassPlaceholderMarker = "jp-mod-placeholder"
)

const templates = `
{{define "gallery"}}<div class="jp-Gallery">
<h2 class="jp-Gallery-title">{{.Title}}</h2>
{{- if not .Configured}}
<p class="jp-Gallery-empty">No exhibits configured.</p>
{{- else}}
<div class="jp-Gallery-grid">
{{- range .Cards}}
<div class="jp-Exhibit" data-exhibit-id="{{.ID}}">
<img class="jp-Exhibit-icon{{if .Placeholder}} jp-mod-placeholder{{end}}" src="{{if .Placeholder}}{{$.Placeholder}}{{else}}{{.Icon}}{{end}}" alt="{{.Title}}">
<h4 class="jp-Exhibit-title">{{if .Homepage}}<a href="{{.Homepage}}" target="_blank" rel="noopener">{{.Title}}</a>{{else}}{{.Title}}{{end}}</h4>
{{- if .Description}}
<p class="jp-Exhibit-description">{{.Description}}</p>
{{- end}}
{{- if .Cloned}}
<span class="jp-Exhibit-clonedIndicator" title="Cloned to {{.LocalPath}}">cloned</span>
{{- end}}
{{- if .UpdatesAvailable}}
<span class="jp-Exhibit-updatesIndicator" title="Updates available">updates available</span>
{{- end}}
<div class="jp-Exhibit-buttons">
{{- if .Cloned}}
<button class="jp-Exhibit-open">Open</button>
{{- if .UpdatesAvailable}}
<button class="jp-Exhibit-update">Update</button>
{{- end}}
{{- else}}
<button class="jp-Exhibit-clone">Clone</button>
{{- end}}
</div>
</div>
{{- end}}
</div>
{{- end}}
</div>
{{end}}
{{define "launcher"}}<div class="jp-LauncherBody">
<details class="jp-Launcher-openByType" open>
<summary>Create Empty</summary>
</details>
<div class="jp-Launcher-section">
{{- if .Visible}}
{{template "gallery" .}}
{{- end}}
</div>
</div>
{{end}}
`

var tmpl = template.Must(template.New("render").Parse(templates))

type card struct {
	ID               int
	Title            string
	Homepage         string
	Description      string
	Icon             string
	Placeholder      bool
	LocalPath        string
	Cloned           bool
	UpdatesAvailable bool
}

type view struct {
	Title       string
	Configured  bool
	Visible     bool
	Cards       []card
	Placeholder template.URL
}

// Visible reports whether the gallery should be shown at all.
func Visible(g dto.GalleryReply, exhibits []dto.Exhibit) bool {
	return !(g.HideGalleryWithoutExhibits && len(exhibits) == 0)
}

// RenderGallery writes the card grid for exhibits in the given order. It
// writes nothing when the gallery is configured to hide without exhibits
// and there are none.
func RenderGallery(w io.Writer, g dto.GalleryReply, exhibits []dto.Exhibit) error {
	v := newView(g, exhibits)
	if !v.Visible {
		return nil
	}
	if err := tmpl.ExecuteTemplate(w, "gallery", v); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}

// RenderLauncher embeds the gallery in a launcher body, the way it appears
// when the gallery is integrated into the launcher.
func RenderLauncher(w io.Writer, g dto.GalleryReply, exhibits []dto.Exhibit) error {
	if err := tmpl.ExecuteTemplate(w, "launcher", newView(g, exhibits)); err != nil {
		return fmt.Errorf("render launcher: %w", err)
	}
	return nil
}

func newView(g dto.GalleryReply, exhibits []dto.Exhibit) view {
	cards := make([]card, 0, len(exhibits))
	for _, e := range exhibits {
		cards = append(cards, toCard(e))
	}
	return view{
		Title:       g.Title,
		Configured:  g.ExhibitsConfigured,
		Visible:     Visible(g, exhibits),
		Cards:       cards,
		Placeholder: PlaceholderIcon,
	}
}

// toCard applies the display rules: the placeholder stands in for both an
// absent and an empty icon, and the updates badge needs a cloned exhibit.
func toCard(e dto.Exhibit) card {
	c := card{
		ID:        e.ID,
		Title:     e.Title,
		LocalPath: e.LocalPath,
		Cloned:    e.IsCloned,
	}
	if e.Homepage != nil {
		c.Homepage = *e.Homepage
	}
	if e.Description != nil {
		c.Description = *e.Description
	}
	if e.Icon != nil && *e.Icon != "" {
		c.Icon = *e.Icon
	} else {
		c.Placeholder = true
	}
	if e.IsCloned && e.UpdatesAvailable != nil {
		c.UpdatesAvailable = *e.UpdatesAvailable
	}
	return c
}
