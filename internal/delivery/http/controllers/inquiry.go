package controllers

import (
	"log/slog"
	"net/http"

	"celebrationgarden/internal/delivery/http/helpers"
	"celebrationgarden/internal/domain"
)

// InquiryController serves inquiry intake and the admin listing.
type InquiryController struct {
	Inquiries domain.InquiryService
	Logger    *slog.Logger
}

type inquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredLawn string `json:"preferredLawn"`
	DesiredDate   string `json:"desiredDate"`
	GuestCount    int    `json:"guestCount"`
}

func (q *inquiryRequest) Validate() []string {
	var problems []string
	if q.Name == "" {
		problems = append(problems, "name is required")
	}
	if q.Email == "" {
		problems = append(problems, "email is required")
	}
	if q.Phone == "" {
		problems = append(problems, "phone is required")
	}
	if q.PreferredLawn == "" {
		problems = append(problems, "preferredLawn is required")
	}
	if q.DesiredDate == "" {
		problems = append(problems, "desiredDate is required")
	}
	if q.GuestCount <= 0 {
		problems = append(problems, "guestCount must be positive")
	}
	return problems
}

// Submit godoc
// @Summary      Submit a venue inquiry
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        request  body  inquiryRequest  true  "Inquiry"
// @Success      201  {object}  helpers.APIResponse
// @Failure      400  {object}  helpers.APIResponse
// @Router       /api/inquiries [post]
func (c *InquiryController) Submit(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	created, err := c.Inquiries.Submit(r.Context(), domain.Inquiry{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredLawn: req.PreferredLawn,
		DesiredDate:   req.DesiredDate,
		GuestCount:    req.GuestCount,
	})
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

type inquiryListResponse struct {
	Inquiries  []domain.Inquiry       `json:"inquiries"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary      List inquiries
// @Tags         inquiries
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int  false  "Page"
// @Param        page_size  query  int  false  "Page size"
// @Success      200  {object}  helpers.APIResponse
// @Failure      401  {object}  helpers.APIResponse
// @Router       /api/inquiries [get]
func (c *InquiryController) List(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	inquiries, total, err := c.Inquiries.List(r.Context(), p.Page, p.PageSize)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inquiryListResponse{
		Inquiries:  inquiries,
		Pagination: helpers.NewPaginationMeta(p, total),
	})
}
