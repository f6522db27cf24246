package triage

import (
	"context"

	"github.com/google/uuid"
)

type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	// ActiveByPatient returns the patient's open session, or
	// ErrSessionNotFound when there is none.
	ActiveByPatient(ctx context.Context, patientID uuid.UUID) (*Session, error)
	Complete(ctx context.Context, id uuid.UUID, level int) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Session, int, error)
}

type AnswerRepository interface {
	// Append records an answer. Appending a second answer for the same
	// question in one session returns ErrDuplicateAnswer.
	Append(ctx context.Context, a *Answer) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Answer, error)
}
