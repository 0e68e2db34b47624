package cms

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"celebrationgarden/internal/domain"
)

// GetInvitationBySlug fetches one invitation by its public slug.
func (c *Client) GetInvitationBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	path := "/invitations?filters[slug][$eq]=" + url.QueryEscape(slug) + "&populate=hero_image"
	doc, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get invitation %q: %w", slug, err)
	}
	item := firstData(doc)
	if !item.Exists() {
		return nil, domain.ErrNotFound
	}
	inv := c.parseInvitation(item)
	return &inv, nil
}

// GetInvitationByID fetches one invitation by its numeric id.
func (c *Client) GetInvitationByID(ctx context.Context, id int) (*domain.Invitation, error) {
	path := fmt.Sprintf("/invitations?filters[id][$eq]=%d&populate=hero_image", id)
	doc, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get invitation %d: %w", id, err)
	}
	item := firstData(doc)
	if !item.Exists() {
		return nil, domain.ErrNotFound
	}
	inv := c.parseInvitation(item)
	return &inv, nil
}

// ListInvitations returns all invitations, newest event first.
func (c *Client) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	doc, err := c.get(ctx, "/invitations?sort=event_date:desc&populate=hero_image")
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	items := dataItems(doc)
	out := make([]domain.Invitation, 0, len(items))
	for _, item := range items {
		out = append(out, c.parseInvitation(item))
	}
	return out, nil
}

// SetInvitationPDFURL stores the generated scrapbook PDF location on the
// invitation record.
func (c *Client) SetInvitationPDFURL(ctx context.Context, invitationID int, pdfURL string) error {
	payload := fmt.Sprintf(`{"data":{"scrapbook_pdf_url":%q}}`, pdfURL)
	if _, err := c.send(ctx, "PUT", fmt.Sprintf("/invitations/%d", invitationID), []byte(payload)); err != nil {
		return fmt.Errorf("set invitation %d pdf url: %w", invitationID, err)
	}
	return nil
}

func (c *Client) parseInvitation(item gjson.Result) domain.Invitation {
	return domain.Invitation{
		ID:              int(item.Get("id").Int()),
		Slug:            attr(item, "slug").String(),
		Title:           attr(item, "title").String(),
		Subtitle:        attr(item, "subtitle").String(),
		Type:            attr(item, "type").String(),
		EventDate:       formatEventDate(attr(item, "event_date").String()),
		Time:            attr(item, "time").String(),
		Location:        attr(item, "location").String(),
		Description:     attr(item, "description").String(),
		HeroImageURL:    c.imageURL(attr(item, "hero_image")),
		ScrapbookPDFURL: attr(item, "scrapbook_pdf_url").String(),
	}
}

// imageURL extracts a media URL across the known nesting variants:
// data.attributes.url, attributes.url, and bare url.
func (c *Client) imageURL(media gjson.Result) string {
	if !media.Exists() || media.Type == gjson.Null {
		return ""
	}
	if media.IsArray() {
		arr := media.Array()
		if len(arr) == 0 {
			return ""
		}
		media = arr[0]
	}
	for _, path := range []string{"data.attributes.url", "attributes.url", "url"} {
		if v := media.Get(path); v.Exists() && v.String() != "" {
			return c.absoluteURL(v.String())
		}
	}
	return ""
}

// formatEventDate reduces an ISO timestamp to YYYY-MM-DD. Values already in
// that form pass through.
func formatEventDate(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}
