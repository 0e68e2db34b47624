package controllers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"celebrationgarden/internal/delivery/http/helpers"
	"celebrationgarden/internal/domain"
)

// maxUploadBytes bounds multipart submissions (photos and PDFs).
const maxUploadBytes = 20 << 20

// ScrapbookController serves guest submissions and the admin scrapbook
// workflow.
type ScrapbookController struct {
	Scrapbook domain.ScrapbookService
	Logger    *slog.Logger
}

type generateRequest struct {
	InvitationSlug string `json:"invitationSlug"`
	InvitationID   int    `json:"invitationId"`
}

func (g *generateRequest) Validate() []string {
	if g.InvitationSlug == "" && g.InvitationID == 0 {
		return []string{"invitationSlug or invitationId is required"}
	}
	if g.InvitationSlug != "" && g.InvitationID != 0 {
		return []string{"invitationSlug and invitationId are mutually exclusive"}
	}
	return nil
}

// SubmitEntry godoc
// @Summary      Submit a scrapbook entry
// @Description  Multipart submission with name, message, invitationSlug and an optional photo
// @Tags         scrapbook
// @Accept       multipart/form-data
// @Produce      json
// @Param        name            formData  string  true   "Guest name"
// @Param        message         formData  string  true   "Message"
// @Param        invitationSlug  formData  string  true   "Invitation slug"
// @Param        relation        formData  string  false  "Relation to hosts"
// @Param        phone           formData  string  false  "Phone"
// @Param        photo           formData  file    false  "Photo"
// @Success      201  {object}  helpers.APIResponse
// @Failure      400  {object}  helpers.APIResponse
// @Failure      404  {object}  helpers.APIResponse
// @Router       /api/scrapbook/entries [post]
func (c *ScrapbookController) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}

	entry := domain.NewEntry{
		Name:     r.FormValue("name"),
		Message:  r.FormValue("message"),
		Relation: r.FormValue("relation"),
		Phone:    r.FormValue("phone"),
	}
	slug := r.FormValue("invitationSlug")

	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		photo, err := io.ReadAll(file)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unreadable photo")
			return
		}
		entry.Photo = photo
		entry.PhotoFilename = header.Filename
		entry.PhotoContentType = header.Header.Get("Content-Type")
	}

	created, err := c.Scrapbook.SubmitEntry(r.Context(), slug, entry)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// Generate godoc
// @Summary      Generate an organized scrapbook
// @Tags         scrapbook
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  generateRequest  true  "Invitation reference"
// @Success      200  {object}  helpers.APIResponse
// @Failure      400  {object}  helpers.APIResponse
// @Failure      404  {object}  helpers.APIResponse
// @Router       /api/scrapbook/generate [post]
func (c *ScrapbookController) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	gen, err := c.Scrapbook.Generate(r.Context(), req.InvitationSlug, req.InvitationID)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gen)
}

// DownloadPDF godoc
// @Summary      Render the scrapbook PDF server-side
// @Tags         scrapbook
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        slug  query  string  false  "Invitation slug"
// @Param        id    query  int     false  "Invitation id"
// @Success      200  {file}  binary
// @Failure      400  {object}  helpers.APIResponse
// @Failure      404  {object}  helpers.APIResponse
// @Router       /api/scrapbook/pdf [get]
func (c *ScrapbookController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	id, _ := strconv.Atoi(r.URL.Query().Get("id"))

	pdf, inv, err := c.Scrapbook.RenderPDF(r.Context(), slug, id)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="scrapbook-%s.pdf"`, inv.Slug))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// UploadPDF godoc
// @Summary      Attach a rendered scrapbook PDF to its invitation
// @Description  Uploads the PDF to the media host and records its URL
// @Tags         scrapbook
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        slug  formData  string  false  "Invitation slug"
// @Param        id    formData  int     false  "Invitation id"
// @Param        pdf   formData  file    true   "PDF file"
// @Success      200  {object}  helpers.APIResponse
// @Failure      400  {object}  helpers.APIResponse
// @Failure      404  {object}  helpers.APIResponse
// @Router       /api/scrapbook/pdf [post]
func (c *ScrapbookController) UploadPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	slug := r.FormValue("slug")
	id, _ := strconv.Atoi(r.FormValue("id"))

	file, header, err := r.FormFile("pdf")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "pdf file is required")
		return
	}
	defer file.Close()
	pdf, err := io.ReadAll(file)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "unreadable pdf")
		return
	}

	attached, err := c.Scrapbook.AttachPDF(r.Context(), slug, id, pdf, header.Filename)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attached)
}
