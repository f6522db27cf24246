// Package flow implements the adaptive question-flow navigator: a
// directed graph over the question catalog plus the dynamic per-condition
// sub-flow scheduling for chronic diseases.
package flow

import "github.com/prioritycare/pretriage/internal/domain/catalog"

// DynamicNextCondition is the sentinel continuation used by chronic
// condition sub-flows. It is never returned to callers; the navigator
// replaces it with the next pending condition's gate question, the
// allergy question, or the end of the questionnaire.
const DynamicNextCondition = "DYNAMIC_NEXT_CONDITION"

// Entry describes where to go after a question is answered. OnValue
// maps canonical answer keys to the next question; a key present with
// an empty target ends the questionnaire for that answer. When no key
// matches, Continuation applies, with "" meaning the questionnaire
// ends.
type Entry struct {
	OnValue      map[string]string
	Continuation string
}

// Graph is the flow table keyed by question code. Questions absent
// from the graph are terminal.
type Graph map[string]Entry

// Resolve returns the next question code after answering the given
// question. Multi-choice answers are matched element by element in the
// client's selection order, so the first selected option with a branch
// wins. An empty result means the questionnaire ends here.
func (g Graph) Resolve(code string, v catalog.Value) string {
	e, ok := g[code]
	if !ok {
		return ""
	}
	for _, key := range v.Keys() {
		if next, hit := e.OnValue[key]; hit {
			return next
		}
	}
	return e.Continuation
}

// leadsToDynamic reports whether a question hands control back to the
// condition scheduler once answered without a branch hit. Used to
// detect completed sub-flows.
func (g Graph) leadsToDynamic(code string) bool {
	e, ok := g[code]
	return ok && e.Continuation == DynamicNextCondition
}

// Answered is one recorded answer within a session.
type Answered struct {
	Code  string
	Value catalog.Value
}

// History is the ordered answer log of a session, oldest first.
type History []Answered

// Value returns the recorded answer for a question code.
func (h History) Value(code string) (catalog.Value, bool) {
	for _, a := range h {
		if a.Code == code {
			return a.Value, true
		}
	}
	return catalog.Value{}, false
}

func (h History) Contains(code string) bool {
	_, ok := h.Value(code)
	return ok
}

// PatientContext carries the demographic facts that steer the entry
// point and the classification guards.
type PatientContext struct {
	Age int
	Sex string
}

// Elderly reports whether the patient routes through the older-adult
// track. The boundary is strict: a 65 year old takes the general flow.
func (p PatientContext) Elderly() bool { return p.Age > 65 }

func (p PatientContext) Female() bool { return p.Sex == "F" }
