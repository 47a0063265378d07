package fares

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string    `json:"status"`
	LoadedAt  time.Time `json:"loaded_at"`
	Documents int       `json:"documents"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := store.Snapshot()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		LoadedAt:  snap.LoadedAt,
		Documents: len(snap.Documents),
	})
}
