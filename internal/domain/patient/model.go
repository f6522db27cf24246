package patient

import (
	"time"

	"github.com/google/uuid"
)

// Document types accepted by the registration desk.
const (
	DocCC = "CC" // Cédula de Ciudadanía
	DocTI = "TI" // Tarjeta de Identidad
	DocRC = "RC" // Registro Civil de Nacimiento
	DocPS = "PS" // Pasaporte
)

const (
	SexMale          = "M"
	SexFemale        = "F"
	SexNotApplicable = "NA"
)

const (
	RegimenSisben       = "SISBEN"
	RegimenContributivo = "REGIMEN_CONTRIBUTIVO"
	RegimenSubsidiado   = "REGIMEN_SUBSIDIADO"
	RegimenNoAfiliado   = "NO_AFILIADO"
)

// Attention states a patient moves through after check-in.
const (
	StateWaiting     = "EN_ESPERA"
	StateInAttention = "EN_ATENCION"
	StateAttended    = "ATENDIDO"
	StateAbandoned   = "ABANDONO"
)

var documentTypes = map[string]bool{DocCC: true, DocTI: true, DocRC: true, DocPS: true}

var sexes = map[string]bool{SexMale: true, SexFemale: true, SexNotApplicable: true}

var regimens = map[string]bool{
	RegimenSisben:       true,
	RegimenContributivo: true,
	RegimenSubsidiado:   true,
	RegimenNoAfiliado:   true,
}

var attentionStates = map[string]bool{
	StateWaiting:     true,
	StateInAttention: true,
	StateAttended:    true,
	StateAbandoned:   true,
}

type Patient struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	MiddleName      string    `json:"middle_name,omitempty"`
	LastName        string    `json:"last_name"`
	SecondLastName  string    `json:"second_last_name,omitempty"`
	BirthDate       time.Time `json:"birth_date"`
	DocumentType    string    `json:"document_type"`
	DocumentNumber  string    `json:"document_number"`
	Sex             string    `json:"sex"`
	PhonePrefix     string    `json:"phone_prefix"`
	Phone           string    `json:"phone"`
	Regimen         string    `json:"regimen"`
	EPS             string    `json:"eps"`
	HasInsurance    bool      `json:"has_insurance"`
	InsuranceName   string    `json:"insurance_name,omitempty"`
	InitialSymptoms string    `json:"initial_symptoms"`
	AttentionState  string    `json:"attention_state"`
	CreatedAt       time.Time `json:"created_at"`
}

// Age returns the patient's age in whole years as of the given date.
func (p *Patient) Age(at time.Time) int {
	years := at.Year() - p.BirthDate.Year()
	if at.Month() < p.BirthDate.Month() ||
		(at.Month() == p.BirthDate.Month() && at.Day() < p.BirthDate.Day()) {
		years--
	}
	return years
}

// EmergencyContact is a person to notify about the patient.
type EmergencyContact struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	FirstName      string    `json:"first_name"`
	MiddleName     string    `json:"middle_name,omitempty"`
	LastName       string    `json:"last_name"`
	SecondLastName string    `json:"second_last_name,omitempty"`
	PhonePrefix    string    `json:"phone_prefix"`
	Phone          string    `json:"phone"`
	Relationship   string    `json:"relationship"`
}
