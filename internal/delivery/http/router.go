// Package http wires the service layer to the HTTP surface.
package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"celebrationgarden/internal/delivery/http/controllers"
	"celebrationgarden/internal/delivery/http/middleware"
	"celebrationgarden/internal/domain"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Invitations    domain.InvitationService
	Scrapbook      domain.ScrapbookService
	Inquiries      domain.InquiryService
	Content        domain.ContentService
	Auth           domain.AuthService
	TokenVerifier  domain.TokenVerifier
	Logger         *slog.Logger
	AllowedOrigins []string
}

// NewRouter builds the full HTTP handler: routes, auth guards, CORS and
// request logging.
func NewRouter(cfg RouterConfig) http.Handler {
	invitationController := &controllers.InvitationController{
		Invitations: cfg.Invitations,
		Scrapbook:   cfg.Scrapbook,
		Logger:      cfg.Logger,
	}
	scrapbookController := &controllers.ScrapbookController{
		Scrapbook: cfg.Scrapbook,
		Logger:    cfg.Logger,
	}
	inquiryController := &controllers.InquiryController{
		Inquiries: cfg.Inquiries,
		Logger:    cfg.Logger,
	}
	contentController := &controllers.ContentController{
		Content: cfg.Content,
		Logger:  cfg.Logger,
	}
	authController := &controllers.AuthController{
		Auth:   cfg.Auth,
		Logger: cfg.Logger,
	}

	requireAuth := middleware.RequireAuth(cfg.TokenVerifier, cfg.Logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /api/home", contentController.Home)

	mux.HandleFunc("GET /api/invitations", requireAuth(invitationController.List))
	mux.HandleFunc("GET /api/invitations/{slug}", invitationController.GetBySlug)
	mux.HandleFunc("GET /api/invitations/{slug}/entries", invitationController.ListEntries)

	mux.HandleFunc("POST /api/scrapbook/entries", scrapbookController.SubmitEntry)
	mux.HandleFunc("POST /api/scrapbook/generate", requireAuth(scrapbookController.Generate))
	mux.HandleFunc("GET /api/scrapbook/pdf", requireAuth(scrapbookController.DownloadPDF))
	mux.HandleFunc("POST /api/scrapbook/pdf", requireAuth(scrapbookController.UploadPDF))

	mux.HandleFunc("POST /api/inquiries", inquiryController.Submit)
	mux.HandleFunc("GET /api/inquiries", requireAuth(inquiryController.List))

	mux.HandleFunc("POST /api/auth/login", authController.Login)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.Logging(cfg.Logger)(handler)
	return handler
}
