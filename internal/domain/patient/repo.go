package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	SearchByDocument(ctx context.Context, number string, limit, offset int) ([]*Patient, int, error)
	SetAttentionState(ctx context.Context, id uuid.UUID, state string) error

	AddContact(ctx context.Context, c *EmergencyContact) error
	ListContacts(ctx context.Context, patientID uuid.UUID) ([]*EmergencyContact, error)
	RemoveContact(ctx context.Context, id uuid.UUID) error
}
