package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prioritycare/pretriage/internal/domain/flow"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	p.AttentionState = StateWaiting
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) SearchByDocument(ctx context.Context, number string, limit, offset int) ([]*Patient, int, error) {
	if number == "" {
		return nil, 0, fmt.Errorf("document number is required")
	}
	return s.repo.SearchByDocument(ctx, number, limit, offset)
}

func (s *Service) SetAttentionState(ctx context.Context, id uuid.UUID, state string) error {
	if !attentionStates[state] {
		return fmt.Errorf("invalid attention state %q", state)
	}
	return s.repo.SetAttentionState(ctx, id, state)
}

// Context exposes the demographic facts the question flow branches on.
func (s *Service) Context(ctx context.Context, id uuid.UUID) (flow.PatientContext, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return flow.PatientContext{}, err
	}
	return flow.PatientContext{Age: p.Age(time.Now()), Sex: p.Sex}, nil
}

func (s *Service) AddContact(ctx context.Context, c *EmergencyContact) error {
	if c.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if c.FirstName == "" || c.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if c.Relationship == "" {
		return fmt.Errorf("relationship is required")
	}
	if _, err := s.repo.GetByID(ctx, c.PatientID); err != nil {
		return err
	}
	return s.repo.AddContact(ctx, c)
}

func (s *Service) ListContacts(ctx context.Context, patientID uuid.UUID) ([]*EmergencyContact, error) {
	return s.repo.ListContacts(ctx, patientID)
}

func (s *Service) RemoveContact(ctx context.Context, id uuid.UUID) error {
	return s.repo.RemoveContact(ctx, id)
}

func validate(p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required")
	}
	if p.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth_date cannot be in the future")
	}
	if !documentTypes[p.DocumentType] {
		return fmt.Errorf("invalid document type %q", p.DocumentType)
	}
	if p.DocumentNumber == "" {
		return fmt.Errorf("document_number is required")
	}
	if !sexes[p.Sex] {
		return fmt.Errorf("invalid sex %q", p.Sex)
	}
	if !regimens[p.Regimen] {
		return fmt.Errorf("invalid regimen %q", p.Regimen)
	}
	if p.InitialSymptoms == "" {
		return fmt.Errorf("initial_symptoms is required")
	}
	if p.HasInsurance && p.InsuranceName == "" {
		return fmt.Errorf("insurance_name is required when has_insurance is set")
	}
	return nil
}
