package cats

import (
	"context"
	"errors"
	"strings"

	"cat-registry/internal/domain/activity"
	"cat-registry/internal/platform/logger"
)

type Service struct {
	repo     Repository
	activity activity.Recorder
	log      logger.Logger
	newID    func() string
}

// NewService arma el servicio. rec y log pueden ser nil.
func NewService(repo Repository, rec activity.Recorder, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		activity: rec,
		log:      log.With(map[string]any{"module": "cats"}),
		newID:    GenerateID,
	}
}

func (s *Service) List(ctx context.Context) ([]Cat, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Cat{}, ErrNoSelection
	}
	return s.repo.GetByID(ctx, id)
}

// Add guarda un gato nuevo con id generado.
func (s *Service) Add(ctx context.Context, f Form) (Cat, error) {
	c, err := f.Normalize()
	if err != nil {
		return Cat{}, err
	}
	c.ID = s.newID()

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}

	s.log.Info("cat added", map[string]any{"cat_id": c.ID, "name": c.Name})
	s.record(ctx, activity.EntryTypeCatAdded, c.ID, "")
	return c, nil
}

// Edit reemplaza los datos del gato id. El id se conserva siempre,
// el formulario no puede cambiarlo.
func (s *Service) Edit(ctx context.Context, id string, f Form) (Cat, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Cat{}, err
	}

	c, err := f.Normalize()
	if err != nil {
		return Cat{}, err
	}
	c.ID = current.ID

	if err := s.repo.Update(ctx, c); err != nil {
		return Cat{}, err
	}

	s.log.Info("cat edited", map[string]any{"cat_id": c.ID})
	s.record(ctx, activity.EntryTypeCatEdited, c.ID, "")
	return c, nil
}

// Delete borra todos los registros con ese id y devuelve cuántos eran.
func (s *Service) Delete(ctx context.Context, id string) (int, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrNoSelection
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	s.log.Info("cat deleted", map[string]any{"cat_id": id, "removed": n})
	s.record(ctx, activity.EntryTypeCatDeleted, id, "")
	return n, nil
}

// ChangeID asigna un id ingresado a mano. Si es inválido el registro no cambia.
// No se chequea que el id nuevo esté libre.
func (s *Service) ChangeID(ctx context.Context, id, newID string) (Cat, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Cat{}, err
	}

	normalized, err := NormalizeID(newID)
	if err != nil {
		s.log.Warn("invalid manual id", map[string]any{"cat_id": current.ID, "input": newID})
		return Cat{}, err
	}

	return s.replaceID(ctx, current, normalized, activity.EntryTypeIDChanged)
}

// RegenerateID le da al gato un id aleatorio nuevo.
func (s *Service) RegenerateID(ctx context.Context, id string) (Cat, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Cat{}, err
	}
	return s.replaceID(ctx, current, s.newID(), activity.EntryTypeIDRegenerated)
}

func (s *Service) replaceID(ctx context.Context, current Cat, newID string, typ activity.EntryType) (Cat, error) {
	if err := s.repo.ChangeID(ctx, current.ID, newID); err != nil {
		return Cat{}, err
	}

	s.log.Info("cat id replaced", map[string]any{"previous_id": current.ID, "cat_id": newID})
	s.record(ctx, typ, newID, current.ID)

	current.ID = newID
	return current, nil
}

// record no hace fallar la mutación: el archivo ya quedó escrito.
func (s *Service) record(ctx context.Context, typ activity.EntryType, catID, previousID string) {
	if s.activity == nil {
		return
	}
	if err := s.activity.Record(ctx, typ, catID, previousID); err != nil {
		s.log.Error("activity record failed", map[string]any{
			"type":   string(typ),
			"cat_id": catID,
			"error":  err,
		})
	}
}

// IsUserError reporta si err es un error de validación que se le muestra al usuario.
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrNoSelection)
}
