package http

import (
	"net/http"

	"unibooking/internal/delivery/http/handler"
	"unibooking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	cardHandler     *handler.CardHandler
	hotelHandler    *handler.HotelHandler
	paymentHandler  *handler.PaymentHandler
	flightHandler   *handler.FlightHandler
	transferHandler *handler.TransferHandler
	visaHandler     *handler.VisaHandler
	voucherHandler  *handler.VoucherHandler
	reportHandler   *handler.ReportHandler
	documentHandler *handler.DocumentHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	cardHandler *handler.CardHandler,
	hotelHandler *handler.HotelHandler,
	paymentHandler *handler.PaymentHandler,
	flightHandler *handler.FlightHandler,
	transferHandler *handler.TransferHandler,
	visaHandler *handler.VisaHandler,
	voucherHandler *handler.VoucherHandler,
	reportHandler *handler.ReportHandler,
	documentHandler *handler.DocumentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		cardHandler:     cardHandler,
		hotelHandler:    hotelHandler,
		paymentHandler:  paymentHandler,
		flightHandler:   flightHandler,
		transferHandler: transferHandler,
		visaHandler:     visaHandler,
		voucherHandler:  voucherHandler,
		reportHandler:   reportHandler,
		documentHandler: documentHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Everything below requires a valid access token
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Booking cards
	protected.HandleFunc("/cards", r.cardHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/cards", r.cardHandler.Search).Methods(http.MethodGet)
	protected.HandleFunc("/cards/bulk-delete", r.cardHandler.BulkDelete).Methods(http.MethodPost)
	protected.HandleFunc("/cards/export", r.cardHandler.ExportCSV).Methods(http.MethodPost)
	protected.HandleFunc("/cards/{id}", r.cardHandler.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/cards/{id}", r.cardHandler.Delete).Methods(http.MethodDelete)

	// Bookings on a card
	protected.HandleFunc("/cards/{cardId}/hotels", r.hotelHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/cards/{cardId}/flights", r.flightHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/cards/{cardId}/transfers", r.transferHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/cards/{cardId}/visas", r.visaHandler.Create).Methods(http.MethodPost)

	protected.HandleFunc("/hotels/{id}", r.hotelHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/flights/{id}", r.flightHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/transfers/{id}", r.transferHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/visas/{id}", r.visaHandler.Get).Methods(http.MethodGet)

	// Hotel payment ledger
	protected.HandleFunc("/hotels/{id}/payments", r.paymentHandler.GetLedger).Methods(http.MethodGet)
	protected.HandleFunc("/hotels/{id}/payments", r.paymentHandler.Record).Methods(http.MethodPost)

	// Payment edit/delete (admin only, enforced again in the usecase)
	paymentAdmin := protected.PathPrefix("/payments").Subrouter()
	paymentAdmin.Use(middleware.RequireAdmin)
	paymentAdmin.HandleFunc("/{id}", r.paymentHandler.Edit).Methods(http.MethodPut)
	paymentAdmin.HandleFunc("/{id}", r.paymentHandler.Delete).Methods(http.MethodDelete)

	// Vouchers and reports
	protected.HandleFunc("/vouchers/{kind}/{id}", r.voucherHandler.Download).Methods(http.MethodGet)
	protected.HandleFunc("/reports", r.reportHandler.Query).Methods(http.MethodGet)
	protected.HandleFunc("/reports/export", r.reportHandler.Export).Methods(http.MethodGet)

	// Document parsing
	protected.HandleFunc("/documents/parse", r.documentHandler.Parse).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
