package patient

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
	contacts map[uuid.UUID]*EmergencyContact
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients: make(map[uuid.UUID]*Patient),
		contacts: make(map[uuid.UUID]*EmergencyContact),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, p *Patient) error {
	if _, ok := m.patients[p.ID]; !ok {
		return ErrNotFound
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return ErrNotFound
	}
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (m *mockRepo) SearchByDocument(_ context.Context, number string, limit, offset int) ([]*Patient, int, error) {
	var out []*Patient
	for _, p := range m.patients {
		if p.DocumentNumber == number {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) SetAttentionState(_ context.Context, id uuid.UUID, state string) error {
	p, ok := m.patients[id]
	if !ok {
		return ErrNotFound
	}
	p.AttentionState = state
	return nil
}

func (m *mockRepo) AddContact(_ context.Context, c *EmergencyContact) error {
	c.ID = uuid.New()
	m.contacts[c.ID] = c
	return nil
}

func (m *mockRepo) ListContacts(_ context.Context, patientID uuid.UUID) ([]*EmergencyContact, error) {
	var out []*EmergencyContact
	for _, c := range m.contacts {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) RemoveContact(_ context.Context, id uuid.UUID) error {
	if _, ok := m.contacts[id]; !ok {
		return ErrContactNotFound
	}
	delete(m.contacts, id)
	return nil
}

func validPatient() *Patient {
	return &Patient{
		FirstName:       "María",
		LastName:        "Gómez",
		BirthDate:       time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		DocumentType:    DocCC,
		DocumentNumber:  "1032456789",
		Sex:             SexFemale,
		PhonePrefix:     "+57",
		Phone:           "3001234567",
		Regimen:         RegimenContributivo,
		EPS:             "SURA",
		InitialSymptoms: "Dolor de cabeza intenso desde ayer",
	}
}

func TestRegister(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if p.ID == uuid.Nil {
		t.Error("no id assigned")
	}
	if p.AttentionState != StateWaiting {
		t.Errorf("state = %q, want %q", p.AttentionState, StateWaiting)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newMockRepo())

	cases := []struct {
		name   string
		mutate func(*Patient)
		want   string
	}{
		{"missing name", func(p *Patient) { p.FirstName = "" }, "first_name"},
		{"missing birth date", func(p *Patient) { p.BirthDate = time.Time{} }, "birth_date"},
		{"future birth date", func(p *Patient) { p.BirthDate = time.Now().AddDate(1, 0, 0) }, "birth_date"},
		{"bad document type", func(p *Patient) { p.DocumentType = "XX" }, "document type"},
		{"missing document number", func(p *Patient) { p.DocumentNumber = "" }, "document_number"},
		{"bad sex", func(p *Patient) { p.Sex = "X" }, "sex"},
		{"bad regimen", func(p *Patient) { p.Regimen = "PRIVADO" }, "regimen"},
		{"missing symptoms", func(p *Patient) { p.InitialSymptoms = "" }, "initial_symptoms"},
		{"insurance without name", func(p *Patient) { p.HasInsurance = true }, "insurance_name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPatient()
			tc.mutate(p)
			err := svc.Register(context.Background(), p)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient()
	p.BirthDate = time.Now().AddDate(-70, 0, -1)
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	pc, err := svc.Context(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if pc.Age != 70 {
		t.Errorf("age = %d, want 70", pc.Age)
	}
	if pc.Sex != SexFemale {
		t.Errorf("sex = %q", pc.Sex)
	}
	if !pc.Elderly() {
		t.Error("70 year old not flagged as elderly")
	}

	if _, err := svc.Context(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAge(t *testing.T) {
	p := &Patient{BirthDate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)}

	cases := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), 33},
		{time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), 34},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 33},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 34},
	}
	for _, tc := range cases {
		if got := p.Age(tc.at); got != tc.want {
			t.Errorf("Age(%s) = %d, want %d", tc.at.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestSetAttentionState(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	if err := svc.SetAttentionState(context.Background(), p.ID, StateInAttention); err != nil {
		t.Fatal(err)
	}
	if repo.patients[p.ID].AttentionState != StateInAttention {
		t.Errorf("state = %q", repo.patients[p.ID].AttentionState)
	}

	if err := svc.SetAttentionState(context.Background(), p.ID, "INVENTADO"); err == nil {
		t.Error("invalid state accepted")
	}
}

func TestContacts(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatal(err)
	}

	c := &EmergencyContact{
		PatientID:    p.ID,
		FirstName:    "Carlos",
		LastName:     "Gómez",
		PhonePrefix:  "+57",
		Phone:        "3109876543",
		Relationship: "Hermano",
	}
	if err := svc.AddContact(context.Background(), c); err != nil {
		t.Fatal(err)
	}

	// Contact for a patient that does not exist is rejected.
	orphan := &EmergencyContact{
		PatientID:    uuid.New(),
		FirstName:    "Ana",
		LastName:     "Ruiz",
		Relationship: "Madre",
	}
	if err := svc.AddContact(context.Background(), orphan); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	got, err := svc.ListContacts(context.Background(), p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("contacts = %d, want 1", len(got))
	}
}
