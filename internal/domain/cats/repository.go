package cats

import "context"

// Repository persiste la colección completa. Las búsquedas son por id y,
// como los ids pueden colisionar, Update y ChangeID tocan solo la primera coincidencia.
type Repository interface {
	List(ctx context.Context) ([]Cat, error)
	GetByID(ctx context.Context, id string) (Cat, error)
	Create(ctx context.Context, c Cat) error
	Update(ctx context.Context, c Cat) error
	Delete(ctx context.Context, id string) (int, error)
	ChangeID(ctx context.Context, oldID, newID string) error
}
