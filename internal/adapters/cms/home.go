package cms

import (
	"context"
	"fmt"

	"celebrationgarden/internal/domain"
)

// homePagePopulates are tried in order; content stores are inconsistent
// about which populate syntax a single type accepts.
var homePagePopulates = []string{
	"?populate[hero_image]=*&populate[faqs]=*",
	"?populate=hero_image&populate=faqs",
	"",
}

// GetHomePage fetches the landing-page single type. Missing fields stay
// zero; the caller merges in defaults.
func (c *Client) GetHomePage(ctx context.Context) (*domain.HomeContent, error) {
	var lastErr error
	for _, q := range homePagePopulates {
		doc, err := c.get(ctx, "/home-page"+q)
		if err != nil {
			lastErr = err
			continue
		}
		item := firstData(doc)
		if !item.Exists() {
			return nil, domain.ErrNotFound
		}

		hc := &domain.HomeContent{
			HeroTitle:       attr(item, "hero_title").String(),
			HeroSubtitle:    attr(item, "hero_subtitle").String(),
			HeroDescription: attr(item, "hero_description").String(),
			HeroImageURL:    c.imageURL(attr(item, "hero_image")),
			AboutText:       attr(item, "about_text").String(),
			Address: domain.Address{
				Line1:   attr(item, "address_line1").String(),
				Line2:   attr(item, "address_line2").String(),
				Line3:   attr(item, "address_line3").String(),
				Country: attr(item, "address_country").String(),
			},
			PhoneNumber:     attr(item, "phone_number").String(),
			WhatsappPhone:   attr(item, "whatsapp_phone").String(),
			InstagramURL:    attr(item, "instagram_url").String(),
			FooterText:      attr(item, "footer_text").String(),
			MetaTitle:       attr(item, "meta_title").String(),
			MetaDescription: attr(item, "meta_description").String(),
		}
		for _, f := range attr(item, "faqs").Array() {
			category := f.Get("category").String()
			if category == "" {
				category = "General"
			}
			hc.FAQs = append(hc.FAQs, domain.FAQItem{
				Question: f.Get("question").String(),
				Answer:   f.Get("answer").String(),
				Category: category,
			})
		}
		seen := map[string]bool{}
		for _, f := range hc.FAQs {
			if !seen[f.Category] {
				seen[f.Category] = true
				hc.FAQCategories = append(hc.FAQCategories, f.Category)
			}
		}
		return hc, nil
	}
	return nil, fmt.Errorf("get home page: %w", lastErr)
}
