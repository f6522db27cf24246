package triage

import (
	"time"

	"github.com/google/uuid"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
)

// Session is one pre-triage questionnaire run for a patient. A patient
// has at most one session with Completed false at a time.
type Session struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	Completed   bool       `json:"completed"`
	Level       *int       `json:"severity_level,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Answer is one recorded answer within a session. The answer log is
// append-only; a question is answered at most once per session.
type Answer struct {
	ID           uuid.UUID     `json:"id"`
	SessionID    uuid.UUID     `json:"session_id"`
	QuestionCode string        `json:"question_code"`
	Value        catalog.Value `json:"value"`
	Note         string        `json:"note,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}
