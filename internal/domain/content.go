package domain

import "context"

// FAQItem is one question/answer pair on the landing page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Address is the venue's postal address as displayed on the landing page.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	Line3   string `json:"line3"`
	Country string `json:"country"`
}

// HomeContent is the merged landing-page content: live CMS values where
// present, defaults everywhere else.
type HomeContent struct {
	BrandName       string    `json:"brandName"`
	HeroTitle       string    `json:"heroTitle"`
	HeroSubtitle    string    `json:"heroSubtitle"`
	HeroDescription string    `json:"heroDescription"`
	HeroImageURL    string    `json:"heroImageUrl"`
	AboutText       string    `json:"aboutText"`
	Address         Address   `json:"address"`
	PhoneNumber     string    `json:"phoneNumber"`
	WhatsappPhone   string    `json:"whatsappPhone"`
	InstagramURL    string    `json:"instagramUrl"`
	FooterText      string    `json:"footerText"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	FAQs            []FAQItem `json:"faqs"`
	FAQCategories   []string  `json:"faqCategories"`
}

// ContentService serves the merged landing-page content. It must always
// return content: when the CMS is unreachable the defaults stand alone.
type ContentService interface {
	HomePage(ctx context.Context) (*HomeContent, error)
}
