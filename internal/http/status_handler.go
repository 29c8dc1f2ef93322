package http

import (
	"net/http"

	"log-reader/internal/models"
)

// ProgressSource exposes the progress of the current run.
type ProgressSource interface {
	Snapshot() models.Progress
}

type healthResponse struct {
	Status string `json:"status"`
}

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{}
}

// Handle processes GET /healthz requests. The process is healthy as long as it can answer.
func (h *healthHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

type progressHandler struct {
	progressSource ProgressSource
}

func NewProgressHandler(progressSource ProgressSource) AppHttpHandler {
	return &progressHandler{progressSource: progressSource}
}

// Handle processes GET /progress requests.
func (h *progressHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, h.progressSource.Snapshot())
}
