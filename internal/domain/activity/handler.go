package activity

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/activity", listActivityHandler(svc))
}

type entryResponse struct {
	ID         string    `json:"id"`
	Type       EntryType `json:"type"`
	CatID      string    `json:"cat_id"`
	PreviousID string    `json:"previous_id,omitempty"`
	Source     Source    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// listActivityHandler godoc
// @Summary Listar actividad
// @Description Lista las mutaciones registradas sobre la colección, más recientes primero. Se puede filtrar por id de gato (actual o anterior).
// @Tags activity
// @Produce json
// @Param cat_id query string false "Id de gato"
// @Param limit query int false "Máximo de entradas (1-200). Por defecto 50"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "limit inválido"
// @Failure 500 {string} string "internal error"
// @Router /activity [get]
func listActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := ListFilter{CatID: strings.TrimSpace(q.Get("cat_id"))}
		if v := strings.TrimSpace(q.Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > MaxLimit {
				http.Error(w, "limit must be between 1 and 200", http.StatusBadRequest)
				return
			}
			filter.Limit = n
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, entryResponse{
				ID:         e.ID,
				Type:       e.Type,
				CatID:      e.CatID,
				PreviousID: e.PreviousID,
				Source:     e.Source,
				RecordedAt: e.RecordedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
