package handler

import (
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"github.com/harvesthub/storefront/internal/domain/feedback"
)

type feedbackRequest struct {
	CustomerName string   `json:"customerName"`
	Email        string   `json:"email"`
	Rating       int      `json:"rating"`
	Message      string   `json:"message"`
	OrderIDs     []string `json:"orderIds,omitempty"`
}

type feedbackResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Rating       int       `json:"rating"`
	Message      string    `json:"message"`
	OrderIDs     []string  `json:"orderIds,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toFeedbackResponse(f feedback.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:           f.ID,
		CustomerName: f.CustomerName,
		Email:        f.Email,
		Rating:       f.Rating,
		Message:      f.Message,
		OrderIDs:     f.OrderIDs,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
	}
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	f, err := h.feedback.Submit(r.Context(), feedback.Request{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Rating:       req.Rating,
		Message:      req.Message,
		OrderIDs:     req.OrderIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrInvalidRating), errors.Is(err, feedback.ErrEmptyMessage):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, toFeedbackResponse(*f))
}

func (h *Handler) adminListFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.List(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]feedbackResponse, 0, len(entries))
	for _, f := range entries {
		out = append(out, toFeedbackResponse(f))
	}
	writeJSON(w, r, http.StatusOK, out)
}

type updateFeedbackRequest struct {
	Status string `json:"status"`
}

func (h *Handler) adminUpdateFeedback(w http.ResponseWriter, r *http.Request) {
	var req updateFeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.feedback.UpdateStatus(r.Context(), r.PathValue("id"), feedback.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrInvalidStatus):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, feedback.ErrNotFound):
			writeError(w, r, http.StatusNotFound, "feedback not found")
		default:
			writeError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
