package controllers

import (
	"log/slog"
	"net/http"

	"celebrationgarden/internal/delivery/http/helpers"
	"celebrationgarden/internal/domain"
)

// InvitationController serves invitation reads.
type InvitationController struct {
	Invitations domain.InvitationService
	Scrapbook   domain.ScrapbookService
	Logger      *slog.Logger
}

// List godoc
// @Summary      List invitations
// @Description  Returns all invitations with entry counts and expiry flags
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  helpers.APIResponse
// @Failure      401  {object}  helpers.APIResponse
// @Router       /api/invitations [get]
func (c *InvitationController) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := c.Invitations.List(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summaries)
}

// GetBySlug godoc
// @Summary      Get an invitation
// @Tags         invitations
// @Produce      json
// @Param        slug  path  string  true  "Invitation slug"
// @Success      200  {object}  helpers.APIResponse
// @Failure      404  {object}  helpers.APIResponse
// @Router       /api/invitations/{slug} [get]
func (c *InvitationController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	inv, err := c.Invitations.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// ListEntries godoc
// @Summary      List scrapbook entries for an invitation
// @Tags         invitations
// @Produce      json
// @Param        slug  path  string  true  "Invitation slug"
// @Success      200  {object}  helpers.APIResponse
// @Failure      404  {object}  helpers.APIResponse
// @Router       /api/invitations/{slug}/entries [get]
func (c *InvitationController) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Scrapbook.ListEntries(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entries)
}
