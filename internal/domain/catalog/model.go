package catalog

import (
	"errors"
	"fmt"
)

// AnswerType is the kind of answer a question accepts.
type AnswerType string

const (
	TypeBoolean     AnswerType = "boolean"
	TypeChoice      AnswerType = "choice"
	TypeMultiChoice AnswerType = "multi_choice"
	TypeScale       AnswerType = "scale"
	TypeText        AnswerType = "text"
)

// ErrUnknownQuestion is returned when a question code does not exist in
// the catalog. Codes referenced by the flow graph are validated at
// startup, so hitting this at runtime on a graph target is a defect.
var ErrUnknownQuestion = errors.New("unknown question code")

// ValidationError reports an answer value that does not fit the
// question it was submitted for.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer for %q: %s", e.Code, e.Reason)
}

// Question is one prompt in the intake questionnaire.
type Question struct {
	Code        string     `json:"code"`
	Text        string     `json:"text"`
	Type        AnswerType `json:"type"`
	Options     []string   `json:"options,omitempty"`
	ScaleMin    int        `json:"scale_min,omitempty"`
	ScaleMax    int        `json:"scale_max,omitempty"`
	MaxLength   int        `json:"max_length,omitempty"`
	Required    bool       `json:"required"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// Validate checks a submitted value against the question's answer type
// and option set.
func (q Question) Validate(v Value) error {
	switch q.Type {
	case TypeBoolean:
		if v.Kind() != KindBool {
			return &ValidationError{Code: q.Code, Reason: "expected a boolean"}
		}
	case TypeChoice:
		if v.Kind() != KindString {
			return &ValidationError{Code: q.Code, Reason: "expected a single option"}
		}
		if !q.hasOption(v.Str()) {
			return &ValidationError{Code: q.Code, Reason: fmt.Sprintf("%q is not an option", v.Str())}
		}
	case TypeMultiChoice:
		if v.Kind() != KindList {
			return &ValidationError{Code: q.Code, Reason: "expected a list of options"}
		}
		for _, item := range v.List() {
			if !q.hasOption(item) {
				return &ValidationError{Code: q.Code, Reason: fmt.Sprintf("%q is not an option", item)}
			}
		}
	case TypeScale:
		n, ok := v.AsNumber()
		if !ok || v.Kind() != KindNumber {
			return &ValidationError{Code: q.Code, Reason: "expected a number"}
		}
		if n != float64(int(n)) || int(n) < q.ScaleMin || int(n) > q.ScaleMax {
			return &ValidationError{
				Code:   q.Code,
				Reason: fmt.Sprintf("expected an integer between %d and %d", q.ScaleMin, q.ScaleMax),
			}
		}
	case TypeText:
		if v.Kind() != KindString {
			return &ValidationError{Code: q.Code, Reason: "expected free text"}
		}
		if q.Required && v.Str() == "" {
			return &ValidationError{Code: q.Code, Reason: "answer is required"}
		}
		if q.MaxLength > 0 && len(v.Str()) > q.MaxLength {
			return &ValidationError{Code: q.Code, Reason: fmt.Sprintf("text exceeds %d characters", q.MaxLength)}
		}
	default:
		return &ValidationError{Code: q.Code, Reason: fmt.Sprintf("unsupported answer type %q", q.Type)}
	}
	return nil
}

func (q Question) hasOption(s string) bool {
	for _, opt := range q.Options {
		if opt == s {
			return true
		}
	}
	return false
}
