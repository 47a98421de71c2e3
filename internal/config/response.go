package config

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// MaxBodyBytes bounds JSON request bodies.
const MaxBodyBytes = 2 << 20

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode JSON response")
	}
}

// Error writes the stable {"error": msg} body used by every non-2xx response.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}
