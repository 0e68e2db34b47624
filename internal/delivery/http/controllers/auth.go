package controllers

import (
	"log/slog"
	"net/http"

	"celebrationgarden/internal/delivery/http/helpers"
	"celebrationgarden/internal/domain"
)

// AuthController serves admin login.
type AuthController struct {
	Auth   domain.AuthService
	Logger *slog.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l *loginRequest) Validate() []string {
	var problems []string
	if l.Email == "" {
		problems = append(problems, "email is required")
	}
	if l.Password == "" {
		problems = append(problems, "password is required")
	}
	return problems
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  loginRequest  true  "Credentials"
// @Success      200  {object}  helpers.APIResponse
// @Failure      401  {object}  helpers.APIResponse
// @Router       /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := helpers.DecodeAndValidate(r, &req); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	token, err := c.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, loginResponse{Token: token})
}
