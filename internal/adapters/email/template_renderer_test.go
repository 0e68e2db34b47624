package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrationgarden/internal/domain"
)

func TestTemplateRenderer_Inquiry(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	subject, html, text, err := r.Render("inquiry", domain.InquiryEmailData{
		Name:          "Jane Sterling",
		Email:         "jane@example.com",
		Phone:         "+1 555 0100",
		PreferredLawn: "Secret Rose Garden",
		DesiredDate:   "2026-09-12",
		GuestCount:    150,
		SubmittedAt:   "2026-08-28T10:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "New venue inquiry from Jane Sterling", subject)
	assert.Contains(t, html, "Jane Sterling")
	assert.Contains(t, html, "Secret Rose Garden")
	assert.Contains(t, text, "Guest count: 150")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, _, err = r.Render("missing", nil)
	assert.Error(t, err)
}
