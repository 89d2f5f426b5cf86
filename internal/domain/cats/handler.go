package cats

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/cats", func(cr chi.Router) {
		// Vista de tabla
		cr.Get("/", listCatsHandler(svc))
		cr.Post("/", addCatHandler(svc))

		cr.Get("/{catID}", getCatHandler(svc))
		cr.Put("/{catID}", editCatHandler(svc))
		cr.Delete("/{catID}", deleteCatHandler(svc))

		// Menú ID
		cr.Put("/{catID}/id", changeIDHandler(svc))
		cr.Post("/{catID}/id/regenerate", regenerateIDHandler(svc))
	})
}

// catRequest es el formulario. Si viene "id" se ignora.
type catRequest struct {
	Name       string `json:"name"`
	Age        string `json:"age"`
	Gender     string `json:"gender" enums:"Male,Female"`
	Color      string `json:"color"`
	Mother     string `json:"mother"`
	Father     string `json:"father"`
	Breed      string `json:"breed"`
	Notes      string `json:"notes"`
	Vaccinated string `json:"vaccinated" enums:"Yes,No"`
}

type changeIDRequest struct {
	ID string `json:"id"`
}

type deleteResponse struct {
	Removed int `json:"removed"`
}

type catResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Age        string     `json:"age"`
	Gender     Gender     `json:"gender"`
	Color      string     `json:"color"`
	Mother     string     `json:"mother"`
	Father     string     `json:"father"`
	Breed      string     `json:"breed"`
	Notes      string     `json:"notes"`
	Vaccinated Vaccinated `json:"vaccinated"`
}

// listCatsHandler godoc
// @Summary Listar gatos
// @Description Devuelve la colección completa en el orden del archivo (vista de tabla).
// @Tags cats
// @Produce json
// @Success 200 {array} catResponse
// @Failure 500 {string} string "internal error"
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// addCatHandler godoc
// @Summary Alta de gato
// @Description Crea un registro con id generado. Los campos de texto libre se guardan en Title Case.
// @Tags cats
// @Accept json
// @Produce json
// @Param payload body catRequest true "Formulario"
// @Success 201 {object} catResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /cats [post]
func addCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Add(r.Context(), req.form())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCatResponse(c))
	}
}

// getCatHandler godoc
// @Summary Ver gato
// @Tags cats
// @Produce json
// @Param catID path string true "Id del gato"
// @Success 200 {object} catResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// editCatHandler godoc
// @Summary Editar gato
// @Description Reemplaza los datos del gato. El id se conserva aunque el cuerpo traiga otro.
// @Tags cats
// @Accept json
// @Produce json
// @Param catID path string true "Id del gato"
// @Param payload body catRequest true "Formulario"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [put]
func editCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Edit(r.Context(), chi.URLParam(r, "catID"), req.form())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// deleteCatHandler godoc
// @Summary Borrar gato
// @Description Borra todos los registros con ese id.
// @Tags cats
// @Produce json
// @Param catID path string true "Id del gato"
// @Success 200 {object} deleteResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [delete]
func deleteCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Delete(r.Context(), chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Removed: n})
	}
}

// changeIDHandler godoc
// @Summary Cambiar id
// @Description Asigna un id manual: 10 caracteres de C/A/T y dígitos (se pasa a mayúsculas). Si es inválido el registro no cambia.
// @Tags cats
// @Accept json
// @Produce json
// @Param catID path string true "Id actual"
// @Param payload body changeIDRequest true "Id nuevo"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/id [put]
func changeIDHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeIDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.ChangeID(r.Context(), chi.URLParam(r, "catID"), req.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// regenerateIDHandler godoc
// @Summary Regenerar id
// @Tags cats
// @Produce json
// @Param catID path string true "Id actual"
// @Success 200 {object} catResponse
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/id/regenerate [post]
func regenerateIDHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.RegenerateID(r.Context(), chi.URLParam(r, "catID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

func (req catRequest) form() Form {
	return Form{
		Name:       req.Name,
		Age:        req.Age,
		Gender:     req.Gender,
		Color:      req.Color,
		Mother:     req.Mother,
		Father:     req.Father,
		Breed:      req.Breed,
		Notes:      req.Notes,
		Vaccinated: req.Vaccinated,
	}
}

func toCatResponse(c Cat) catResponse {
	return catResponse(c)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case IsUserError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
