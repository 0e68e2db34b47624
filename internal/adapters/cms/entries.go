package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"celebrationgarden/internal/domain"
)

// ListEntriesByInvitationID returns the scrapbook entries belonging to one
// invitation, in ingestion order.
func (c *Client) ListEntriesByInvitationID(ctx context.Context, invitationID int) ([]domain.ScrapbookEntry, error) {
	path := fmt.Sprintf("/scrapbook-entries?filters[invitation][id][$eq]=%d&populate=image&sort=id:asc&pagination[pageSize]=200", invitationID)
	doc, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list entries for invitation %d: %w", invitationID, err)
	}
	items := dataItems(doc)
	out := make([]domain.ScrapbookEntry, 0, len(items))
	for _, item := range items {
		out = append(out, c.parseEntry(item))
	}
	return out, nil
}

// CountEntriesByInvitationID returns the number of entries for one
// invitation without fetching them all.
func (c *Client) CountEntriesByInvitationID(ctx context.Context, invitationID int) (int, error) {
	path := fmt.Sprintf("/scrapbook-entries?filters[invitation][id][$eq]=%d&pagination[pageSize]=1", invitationID)
	doc, err := c.get(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("count entries for invitation %d: %w", invitationID, err)
	}
	if total := doc.Get("meta.pagination.total"); total.Exists() {
		return int(total.Int()), nil
	}
	return len(dataItems(doc)), nil
}

// CreateEntry persists a new guest entry. The photo, when present, is
// uploaded to the media library first and its URL stored on the entry. An
// entry without an owning invitation is refused.
func (c *Client) CreateEntry(ctx context.Context, entry domain.NewEntry) (*domain.ScrapbookEntry, error) {
	if entry.InvitationID == 0 {
		return nil, fmt.Errorf("entry without invitation: %w", domain.ErrInvalidInput)
	}

	imageURL := ""
	if len(entry.Photo) > 0 {
		uploaded, err := c.uploadMedia(ctx, entry.PhotoFilename, entry.PhotoContentType, entry.Photo)
		if err != nil {
			// A lost photo should not lose the message.
			c.logger.Warn("entry photo upload failed", "invitation_id", entry.InvitationID, "err", err)
		} else {
			imageURL = uploaded
		}
	}

	submittedAt := time.Now().UTC()
	payload, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"name":         entry.Name,
			"relation":     entry.Relation,
			"message":      entry.Message,
			"phone":        entry.Phone,
			"invitation":   entry.InvitationID,
			"submitted_at": submittedAt.Format(time.RFC3339),
			"image_url":    imageURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}

	doc, err := c.send(ctx, "POST", "/scrapbook-entries", payload)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	item := firstData(doc)
	created := c.parseEntry(item)
	if created.SubmittedAt.IsZero() {
		created.SubmittedAt = submittedAt
	}
	return &created, nil
}

// parseEntry normalizes one raw entry. The canonical image URL prefers the
// managed media file, falls back to its thumbnail formats, then to the bare
// image_url text field.
func (c *Client) parseEntry(item gjson.Result) domain.ScrapbookEntry {
	e := domain.ScrapbookEntry{
		ID:       int(item.Get("id").Int()),
		Name:     attr(item, "name").String(),
		Relation: attr(item, "relation").String(),
		Message:  attr(item, "message").String(),
		Phone:    attr(item, "phone").String(),
		ImageURL: c.entryImageURL(item),
	}
	if s := attr(item, "submitted_at").String(); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			e.SubmittedAt = t
		}
	}
	return e
}

func (c *Client) entryImageURL(item gjson.Result) string {
	image := attr(item, "image")
	if image.IsArray() {
		arr := image.Array()
		if len(arr) > 0 {
			image = arr[0]
		}
	}
	if image.Exists() && image.Type != gjson.Null {
		// Strapi text fields and media fields can both be named "image".
		if image.Type == gjson.String {
			return c.absoluteURL(image.String())
		}
		paths := []string{
			"data.attributes.url", "attributes.url", "url",
			"formats.small.url", "formats.thumbnail.url",
		}
		for _, p := range paths {
			if v := image.Get(p); v.Exists() && v.String() != "" {
				return c.absoluteURL(v.String())
			}
		}
	}
	if v := attr(item, "image_url"); v.Exists() && v.String() != "" {
		return c.absoluteURL(v.String())
	}
	return ""
}
