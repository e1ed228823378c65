package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/validation"
	"health-scheduling-api/internal/usecase"
	"health-scheduling-api/pkg/response"
	"health-scheduling-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// WebhookTokenHeader carries the shared secret the gateway sends with every event.
const WebhookTokenHeader = "asaas-access-token"

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
	webhookToken   string
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator, webhookToken string) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
		webhookToken:   webhookToken,
	}
}

func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	consultationID, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Consultation not found")
		return
	}

	var req dto.CreatePaymentRequest
	if details := decodeJSON(r, &req, ""); details != nil {
		response.ValidationError(w, details)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.CreatePayment(r.Context(), consultationID, &req)
	if err != nil {
		var errs validation.Errors
		switch {
		case errors.As(err, &errs):
			response.ValidationError(w, errs)
		case errors.Is(err, usecase.ErrConsultationNotFound):
			response.NotFound(w, "Consultation not found")
		default:
			response.InternalServerError(w, "Failed to create payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.NotFound(w, "Payment not found")
		return
	}

	payment, err := h.paymentUsecase.GetPayment(r.Context(), paymentID)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			response.NotFound(w, "Payment not found")
			return
		}
		response.InternalServerError(w, "Failed to get payment")
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

// Webhook receives charge status events. It is public; the shared token is
// the only credential.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(WebhookTokenHeader)
	if h.webhookToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.webhookToken)) != 1 {
		response.Unauthorized(w, "Invalid webhook token")
		return
	}

	var req dto.PaymentWebhookRequest
	if details := decodeJSON(r, &req, ""); details != nil {
		response.ValidationError(w, details)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.paymentUsecase.HandleWebhook(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to process webhook")
		return
	}

	response.Success(w, http.StatusOK, "Webhook received", result)
}
