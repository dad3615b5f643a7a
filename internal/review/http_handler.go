package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"booklist/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// ListByISBN handles GET /api/reviews/{isbn}. No auth required.
func (h *HTTPHandler) ListByISBN(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reviews": reviews,
		"count":   len(reviews),
	})
}

type upsertReq struct {
	ISBN    string `json:"isbn" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Upsert handles POST /api/reviews behind the auth guard. 201 when the
// caller had no review for the book yet, 200 when an existing one was
// replaced.
func (h *HTTPHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	user := identityFrom(r)
	if user.ID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access token required")
		return
	}

	var req upsertReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if tags := httpx.ValidateStruct(req); len(tags) > 0 {
		for _, tag := range tags {
			if tag == "required" {
				httpx.Error(w, http.StatusBadRequest, "ISBN and rating are required")
				return
			}
		}
		httpx.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	rev, created, err := h.service.Upsert(r.Context(), user, req.ISBN, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookNotFound):
			httpx.Error(w, http.StatusNotFound, "Book not found")
		case errors.Is(err, ErrRatingRange):
			httpx.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		default:
			httpx.Error(w, http.StatusInternalServerError, "Failed to add/modify review")
		}
		return
	}

	status := http.StatusOK
	message := "Review updated successfully"
	if created {
		status = http.StatusCreated
		message = "Review added successfully"
	}
	httpx.JSON(w, status, map[string]any{
		"success": true,
		"message": message,
		"review":  rev,
	})
}

// Delete handles DELETE /api/reviews/{isbn} behind the auth guard.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := identityFrom(r)
	if user.ID == "" {
		httpx.Error(w, http.StatusUnauthorized, "Access token required")
		return
	}

	err := h.service.Delete(r.Context(), user, r.PathValue("isbn"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Review not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Review deleted successfully",
	})
}

func identityFrom(r *http.Request) Identity {
	return Identity{
		ID:       httpx.UserIDFrom(r),
		Username: httpx.UsernameFrom(r),
	}
}
