package scenario

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gallery-service/internal/galleryclient"
	"gallery-service/internal/render"
)

// ClassHover marks the card under the pointer.
const ClassHover = "jp-mod-hover"

// Host renders the gallery the way the notebook IDE would, from whatever the
// client receives.
type Host struct {
	client   *galleryclient.Client
	launcher bool
}

func NewHost(client *galleryclient.Client, launcher bool) *Host {
	return &Host{client: client, launcher: launcher}
}

// Goto fetches both endpoints and renders them. Rendering is synchronous,
// so the returned page is already settled.
func (h *Host) Goto(ctx context.Context) (*Page, error) {
	gallery, err := h.client.Gallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("load gallery: %w", err)
	}
	exhibits, err := h.client.Exhibits(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exhibits: %w", err)
	}

	var buf bytes.Buffer
	if h.launcher {
		err = render.RenderLauncher(&buf, *gallery, exhibits.Exhibits)
	} else {
		err = render.RenderGallery(&buf, *gallery, exhibits.Exhibits)
	}
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}
	return &Page{doc: doc, Ready: true}, nil
}

type Page struct {
	doc *goquery.Document
	// Ready is set once the page has finished rendering.
	Ready bool
}

func (p *Page) Locator(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// Hover moves the pointer onto the first element matching selector.
func (p *Page) Hover(selector string) error {
	target := p.doc.Find(selector).First()
	if target.Length() == 0 {
		return fmt.Errorf("hover: no element matches %q", selector)
	}
	p.doc.Find("." + ClassHover).RemoveClass(ClassHover)
	target.AddClass(ClassHover)
	return nil
}

// Collapse closes the <details> section that contains the first element
// matching selector.
func (p *Page) Collapse(selector string) error {
	details := p.doc.Find(selector).First().Closest("details")
	if details.Length() == 0 {
		return fmt.Errorf("collapse: no section contains %q", selector)
	}
	details.RemoveAttr("open")
	return nil
}

// Capture returns the outer HTML of the first matched element with blank
// lines and surrounding whitespace removed from every line.
func Capture(sel *goquery.Selection) (string, error) {
	if sel.Length() == 0 {
		return "", fmt.Errorf("capture: empty selection")
	}
	html, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	var b strings.Builder
	for _, line := range strings.Split(html, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
