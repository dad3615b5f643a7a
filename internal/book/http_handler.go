package book

import (
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

// List handles GET /api/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch books")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
		"count":   len(books),
	})
}

// GetByISBN handles GET /api/books/isbn/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")

	b, err := h.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "Book not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch book")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"book":    b,
	})
}

// ListByAuthor handles GET /api/books/author/{author}. The mux hands
// over the path segment already percent-decoded.
func (h *HTTPHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByAuthor(r.Context(), r.PathValue("author"))
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch books by author")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
		"count":   len(books),
	})
}

// ListByTitle handles GET /api/books/title/{title}
func (h *HTTPHandler) ListByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.FindByTitle(r.Context(), r.PathValue("title"))
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Failed to fetch books by title")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
		"count":   len(books),
	})
}
