package handlers

import (
	"net/http"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"service": "miblog",
		"status":  "ok",
	}, http.StatusOK)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "БД недоступна", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
