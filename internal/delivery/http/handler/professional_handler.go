package handler

import (
	"errors"
	"net/http"

	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/validation"
	"health-scheduling-api/internal/usecase"
	"health-scheduling-api/pkg/response"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
	}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfessionalRequest
	if details := decodeJSON(r, &req, ""); details != nil {
		response.ValidationError(w, details)
		return
	}

	professional, err := h.professionalUsecase.CreateProfessional(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to create professional")
		return
	}

	response.Success(w, http.StatusCreated, "Professional created successfully", professional)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Professional not found")
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(r)
	if !ok {
		response.NotFound(w, msgInvalidPage)
		return
	}

	q := r.URL.Query()
	result, err := h.professionalUsecase.ListProfessionals(r.Context(), dto.ProfessionalListQuery{
		Profession: q.Get("profession"),
		Search:     q.Get("search"),
		Ordering:   q.Get("ordering"),
		Page:       page,
	})
	if err != nil {
		writeListError(w, err, "Failed to get professionals")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Professionals retrieved successfully", result.Professionals,
		response.NewMeta(result.Page, result.PageSize, result.Total))
}

// UpdateProfessional serves PUT (every field required) and PATCH.
func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Professional not found")
		return
	}

	var req dto.ProfessionalRequest
	if details := decodeJSON(r, &req, ""); details != nil {
		response.ValidationError(w, details)
		return
	}

	partial := r.Method == http.MethodPatch
	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), id, &req, partial)
	if err != nil {
		h.writeError(w, err, "Failed to update professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.NotFound(w, "Professional not found")
		return
	}

	if err := h.professionalUsecase.DeleteProfessional(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete professional")
		return
	}

	response.NoContent(w)
}

func (h *ProfessionalHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var errs validation.Errors
	switch {
	case errors.As(err, &errs):
		response.ValidationError(w, errs)
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		response.NotFound(w, "Professional not found")
	case errors.Is(err, usecase.ErrProfessionalHasConsultations):
		response.Conflict(w, "Cannot delete a professional with registered consultations.")
	default:
		response.InternalServerError(w, fallback)
	}
}
