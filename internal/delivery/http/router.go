package http

import (
	"net/http"

	"health-scheduling-api/internal/delivery/http/handler"
	"health-scheduling-api/internal/delivery/http/middleware"
	"health-scheduling-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	professionalHandler *handler.ProfessionalHandler
	consultationHandler *handler.ConsultationHandler
	paymentHandler      *handler.PaymentHandler
	auditLogHandler     *handler.AuditLogHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	production          bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	professionalHandler *handler.ProfessionalHandler,
	consultationHandler *handler.ConsultationHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	production bool,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		professionalHandler: professionalHandler,
		consultationHandler: consultationHandler,
		paymentHandler:      paymentHandler,
		auditLogHandler:     auditLogHandler,
		healthHandler:       healthHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
		production:          production,
	}
}

// Setup registers every route and wraps the router in the global middleware.
// CORS sits outside the router so preflight requests for any path are answered.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Not found.")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method \""+req.Method+"\" not allowed.", nil)
	})

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/token", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/token/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/token/verify", r.authHandler.VerifyToken).Methods(http.MethodPost)

	// Payment gateway callback (public, token in header)
	api.HandleFunc("/payments/webhook", r.paymentHandler.Webhook).Methods(http.MethodPost)

	// Everything below requires an access token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Professionals
	protected.HandleFunc("/professionals", r.professionalHandler.ListProfessionals).Methods(http.MethodGet)
	protected.HandleFunc("/professionals", r.professionalHandler.CreateProfessional).Methods(http.MethodPost)
	protected.HandleFunc("/professionals/{id:[0-9]+}", r.professionalHandler.GetProfessional).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{id:[0-9]+}", r.professionalHandler.UpdateProfessional).Methods(http.MethodPut, http.MethodPatch)
	protected.HandleFunc("/professionals/{id:[0-9]+}", r.professionalHandler.DeleteProfessional).Methods(http.MethodDelete)

	// Consultations
	protected.HandleFunc("/consultations", r.consultationHandler.ListConsultations).Methods(http.MethodGet)
	protected.HandleFunc("/consultations", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	protected.HandleFunc("/consultations/by-professional/{professional_id:[0-9]+}", r.consultationHandler.ListByProfessional).Methods(http.MethodGet)
	protected.HandleFunc("/consultations/{id:[0-9]+}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	protected.HandleFunc("/consultations/{id:[0-9]+}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut, http.MethodPatch)
	protected.HandleFunc("/consultations/{id:[0-9]+}", r.consultationHandler.DeleteConsultation).Methods(http.MethodDelete)

	// Payments
	protected.HandleFunc("/consultations/{id:[0-9]+}/payments", r.paymentHandler.CreatePayment).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{id}", r.paymentHandler.GetPayment).Methods(http.MethodGet)

	// Audit trail
	protected.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	var h http.Handler = r.router
	h = r.rateLimitMiddleware.Handle(h)
	h = r.corsMiddleware.Handle(h)
	h = middleware.SecurityHeaders(r.production)(h)
	h = r.loggingMiddleware.Handle(h)
	return h
}
