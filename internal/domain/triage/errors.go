package triage

import "errors"

var (
	ErrSessionNotFound  = errors.New("triage session not found")
	ErrSessionCompleted = errors.New("triage session already completed")
	ErrDuplicateAnswer  = errors.New("question already answered in this session")
	ErrPatientNotFound  = errors.New("patient not found")
)
