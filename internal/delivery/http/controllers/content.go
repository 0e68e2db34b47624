package controllers

import (
	"log/slog"
	"net/http"

	"celebrationgarden/internal/delivery/http/helpers"
	"celebrationgarden/internal/domain"
)

// ContentController serves the merged landing-page content.
type ContentController struct {
	Content domain.ContentService
	Logger  *slog.Logger
}

// Home godoc
// @Summary      Get landing-page content
// @Description  Live CMS content merged over site defaults; always renders
// @Tags         content
// @Produce      json
// @Success      200  {object}  helpers.APIResponse
// @Router       /api/home [get]
func (c *ContentController) Home(w http.ResponseWriter, r *http.Request) {
	content, err := c.Content.HomePage(r.Context())
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, content)
}
