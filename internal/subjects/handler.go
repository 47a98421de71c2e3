package subjects

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.catalog)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	subject, ok := h.catalog.Find(chi.URLParam(r, "name"))
	if !ok {
		config.Error(w, http.StatusNotFound, "subject not found")
		return
	}
	config.JSON(w, http.StatusOK, subject)
}
