package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/validation"
	"health-scheduling-api/internal/usecase"
	"health-scheduling-api/pkg/response"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUsecase: consultationUsecase,
	}
}

func (h *ConsultationHandler) CreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req dto.ConsultationRequest
	if details := decodeJSON(r, &req, "scheduled_at"); details != nil {
		response.ValidationError(w, details)
		return
	}

	consultation, err := h.consultationUsecase.CreateConsultation(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create consultation")
		return
	}

	response.Success(w, http.StatusCreated, "Consultation created successfully", consultation)
}

func (h *ConsultationHandler) GetConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Consultation not found")
		return
	}

	consultation, err := h.consultationUsecase.GetConsultation(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation retrieved successfully", consultation)
}

func (h *ConsultationHandler) ListConsultations(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(r)
	if !ok {
		response.NotFound(w, msgInvalidPage)
		return
	}

	q := r.URL.Query()
	query := dto.ConsultationListQuery{
		Search:   q.Get("search"),
		Ordering: q.Get("ordering"),
		Page:     page,
	}

	details := map[string][]string{}
	if raw := q.Get("professional_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 0)
		if err != nil {
			details["professional_id"] = []string{msgInvalidInteger}
		} else {
			professionalID := uint(id)
			query.ProfessionalID = &professionalID
		}
	}
	if raw := q.Get("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			details["date"] = []string{"Enter a valid date."}
		} else {
			query.Date = &date
		}
	}
	if len(details) > 0 {
		response.ValidationError(w, details)
		return
	}

	result, err := h.consultationUsecase.ListConsultations(r.Context(), query)
	if err != nil {
		writeListError(w, err, "Failed to get consultations")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Consultations retrieved successfully", result.Consultations,
		response.NewMeta(result.Page, result.PageSize, result.Total))
}

func (h *ConsultationHandler) ListByProfessional(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := pathID(r, "professional_id")
	if !ok {
		response.NotFound(w, "Professional not found")
		return
	}
	page, ok := pageParam(r)
	if !ok {
		response.NotFound(w, msgInvalidPage)
		return
	}

	result, err := h.consultationUsecase.ListByProfessional(r.Context(), professionalID, page)
	if err != nil {
		writeListError(w, err, "Failed to get consultations")
		return
	}

	message := "Consultations retrieved successfully"
	if result.Total == 0 {
		message = fmt.Sprintf("No consultations found for professional ID %d.", professionalID)
	}
	response.SuccessWithMeta(w, http.StatusOK, message, result.Consultations,
		response.NewMeta(result.Page, result.PageSize, result.Total))
}

// UpdateConsultation serves PUT (scheduled_at and professional_id required) and PATCH.
func (h *ConsultationHandler) UpdateConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Consultation not found")
		return
	}

	var req dto.ConsultationRequest
	if details := decodeJSON(r, &req, "scheduled_at"); details != nil {
		response.ValidationError(w, details)
		return
	}

	partial := r.Method == http.MethodPatch
	consultation, err := h.consultationUsecase.UpdateConsultation(r.Context(), id, &req, partial)
	if err != nil {
		h.writeError(w, err, "Failed to update consultation")
		return
	}

	response.Success(w, http.StatusOK, "Consultation updated successfully", consultation)
}

func (h *ConsultationHandler) DeleteConsultation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Consultation not found")
		return
	}

	if err := h.consultationUsecase.DeleteConsultation(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete consultation")
		return
	}

	response.NoContent(w)
}

func (h *ConsultationHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var errs validation.Errors
	switch {
	case errors.As(err, &errs):
		response.ValidationError(w, errs)
	case errors.Is(err, usecase.ErrConsultationNotFound):
		response.NotFound(w, "Consultation not found")
	default:
		response.InternalServerError(w, fallback)
	}
}
