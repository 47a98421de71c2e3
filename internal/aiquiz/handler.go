package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/quizforge-lambda/internal/apperror"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
	"github.com/saulo-duarte/quizforge-lambda/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req quiz.GenerationRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid generate request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Subtopic) == "" {
		config.Error(w, http.StatusBadRequest, "subject and subtopic are required")
		return
	}

	generationID := uuid.NewString()
	log = log.WithFields(logrus.Fields{
		"generation_id": generationID,
		"subject":       req.Subject,
		"subtopic":      req.Subtopic,
	})

	payload, err := h.service.Generate(r.Context(), req)
	if err != nil {
		var genErr *apperror.GenerationError
		if errors.As(err, &genErr) {
			log = log.WithField("models", genErr.Models)
		}
		log.WithError(err).Error("Failed to generate quiz")
		config.Error(w, apperror.HTTPStatus(err), errorMessage(err))
		return
	}

	log.Infof("Generated passage with %d questions", len(payload.Questions))
	w.Header().Set("X-Generation-ID", generationID)
	config.JSON(w, http.StatusOK, payload)
}

func errorMessage(err error) string {
	var parseErr *apperror.ParseError
	if errors.As(err, &parseErr) {
		return "LLM output could not be parsed"
	}
	return err.Error()
}
