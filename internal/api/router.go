package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/checkout"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/drafts"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/get_class"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/handle_webhook"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/list_classes"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/list_confirmations"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/send_contact"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClassBookingService/pkg/metrics"
)

// Handlers все HTTP handlers сервиса
type Handlers struct {
	ListClasses       *list_classes.Handler
	GetClass          *get_class.Handler
	AvailableSlots    *get_available_slots.Handler
	Drafts            *drafts.Handler
	Checkout          *checkout.Handler
	VerifyPayment     *verify_payment.Handler
	Webhook           *handle_webhook.Handler
	Contact           *send_contact.Handler
	ListConfirmations *list_confirmations.Handler
}

// RouterOptions параметры роутера. Metrics = nil выключает метрики.
type RouterOptions struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	ServiceName string
	AdminToken  string
}

// NewRouter собирает маршруты /api/v1
func NewRouter(h *Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics, opts.ServiceName))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и слоты ---
	api.HandleFunc("/classes", h.ListClasses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/classes/{classId}", h.GetClass.Handle).Methods(http.MethodGet)
	api.HandleFunc("/classes/{classId}/available-slots", h.AvailableSlots.Handle).Methods(http.MethodGet)

	// --- Черновик бронирования ---
	api.HandleFunc("/drafts", h.Drafts.Create).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", h.Drafts.Get).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/class", h.Drafts.SelectClass).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/details", h.Drafts.SubmitDetails).Methods(http.MethodPut)
	api.HandleFunc("/drafts/{draftId}/back", h.Drafts.Back).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/checkout", h.Checkout.HandleDraft).Methods(http.MethodPost)

	// --- Оплата ---
	api.HandleFunc("/checkout-session", h.Checkout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/verify-payment", h.VerifyPayment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/webhook", h.Webhook.Handle).Methods(http.MethodPost)

	// --- Обратная связь ---
	api.HandleFunc("/contact", h.Contact.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(opts.AdminToken))
	admin.HandleFunc("/confirmations", h.ListConfirmations.Handle).Methods(http.MethodGet)

	return r
}
