package status

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/carson-networks/budget-tracker/internal/logging"
)

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

type response struct {
	Status string `json:"status"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.WriteHeader(http.StatusBadRequest)
		return fmt.Errorf("status: method %s not allowed", req.Method)
	}

	logData.AddData("method", req.Method)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return nil
	}
	return json.NewEncoder(w).Encode(response{Status: "ok"})
}
