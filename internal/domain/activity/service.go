package activity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Recorder es lo que necesitan otros módulos para dejar registro de una mutación.
type Recorder interface {
	Record(ctx context.Context, typ EntryType, catID, previousID string) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Record(ctx context.Context, typ EntryType, catID, previousID string) error {
	if typ == "" || strings.TrimSpace(catID) == "" {
		return ErrInvalidInput
	}

	e := Entry{
		ID:         uuid.NewString(),
		Type:       typ,
		CatID:      catID,
		PreviousID: previousID,
		Source:     SourceFrom(ctx),
		RecordedAt: s.now().UTC(),
	}
	return s.repo.Create(ctx, e)
}

// List devuelve las entradas más recientes primero.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	filter.CatID = strings.TrimSpace(filter.CatID)
	return s.repo.List(ctx, filter)
}
