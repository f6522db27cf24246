// Package classify assigns an Emergency Severity Index level (1 most
// critical, 5 least) to a completed answer history by evaluating an
// ordered list of prioritized rules. The most critical matching rule
// wins.
package classify

import (
	"fmt"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
	"github.com/prioritycare/pretriage/internal/domain/flow"
)

// Operator compares a recorded answer against a rule's expectation.
type Operator string

const (
	OpEqual Operator = "eq"
	OpIn    Operator = "in"
	OpGTE   Operator = "gte"
	OpLTE   Operator = "lte"
	OpGT    Operator = "gt"
	OpLT    Operator = "lt"
)

// Guard restricts a rule to a patient context. Track-specific rules
// carry an explicit guard instead of being inferred from question
// codes, so a rule matches only patients who could have been routed
// through its track.
type Guard int

const (
	GuardNone Guard = iota
	GuardPregnantOnly
	GuardElderlyOnly
)

// Check is a single predicate over one question's recorded answer. A
// check on an unanswered question never matches.
//
// For OpEqual, AnyOf holds the option labels that count as a hit and
// multi-choice answers match when any selected option is among them;
// Value is used instead for scalar equality. For OpIn, AnyOf holds the
// accepted numeric values. The ordering operators compare numerically
// against Value.
type Check struct {
	Question string
	Operator Operator
	Value    catalog.Value
	AnyOf    []catalog.Value
}

// Rule maps a conjunction of checks to a severity level.
type Rule struct {
	Checks []Check
	Guard  Guard
	Level  int
}

// Engine evaluates rules against session histories.
type Engine struct {
	rules []Rule
}

// NewEngine validates the rule set and returns an engine. Levels must
// be within 1..5 and every rule needs at least one check.
func NewEngine(rules []Rule) (*Engine, error) {
	for i, r := range rules {
		if r.Level < 1 || r.Level > 5 {
			return nil, fmt.Errorf("classify: rule %d has level %d", i, r.Level)
		}
		if len(r.Checks) == 0 {
			return nil, fmt.Errorf("classify: rule %d has no checks", i)
		}
	}
	return &Engine{rules: rules}, nil
}

// Default returns the engine loaded with the built-in rule set.
func Default() *Engine {
	e, err := NewEngine(DefaultRules())
	if err != nil {
		panic(err)
	}
	return e
}

// Classify returns the severity level for a finished session. Every
// rule whose guard admits the patient and whose checks all hold
// contributes its level; the minimum wins. Histories matching no rule
// default to level 3 for older adults and level 5 otherwise.
func (e *Engine) Classify(h flow.History, p flow.PatientContext) int {
	pregnant := false
	if v, ok := h.Value("embarazo"); ok {
		pregnant = v.Truthy()
	}

	best := 0
	for _, r := range e.rules {
		switch r.Guard {
		case GuardPregnantOnly:
			if !pregnant {
				continue
			}
		case GuardElderlyOnly:
			if !p.Elderly() {
				continue
			}
		}
		if !ruleMatches(r, h) {
			continue
		}
		if best == 0 || r.Level < best {
			best = r.Level
		}
	}

	if best == 0 {
		if p.Elderly() {
			return 3
		}
		return 5
	}
	return best
}

func ruleMatches(r Rule, h flow.History) bool {
	for _, c := range r.Checks {
		answer, ok := h.Value(c.Question)
		if !ok || !checkMatches(c, answer) {
			return false
		}
	}
	return true
}

func checkMatches(c Check, answer catalog.Value) bool {
	switch c.Operator {
	case OpEqual:
		if len(c.AnyOf) > 0 {
			return overlaps(answer, c.AnyOf)
		}
		if answer.Kind() == catalog.KindList {
			return overlaps(answer, []catalog.Value{c.Value})
		}
		return answer.Equal(c.Value)
	case OpIn:
		n, ok := answer.AsNumber()
		if !ok {
			return false
		}
		for _, e := range c.AnyOf {
			if m, ok := e.AsNumber(); ok && m == n {
				return true
			}
		}
		return false
	case OpGTE, OpLTE, OpGT, OpLT:
		n, ok := answer.AsNumber()
		if !ok {
			return false
		}
		m, ok := c.Value.AsNumber()
		if !ok {
			return false
		}
		switch c.Operator {
		case OpGTE:
			return n >= m
		case OpLTE:
			return n <= m
		case OpGT:
			return n > m
		default:
			return n < m
		}
	}
	return false
}

// overlaps reports whether any element of the answer equals any of the
// expected values, comparing by canonical key. Scalar answers are
// treated as single-element sets.
func overlaps(answer catalog.Value, expected []catalog.Value) bool {
	for _, key := range answer.Keys() {
		for _, e := range expected {
			if e.Kind() != catalog.KindList && e.Key() == key {
				return true
			}
		}
	}
	return false
}

// Label returns the display name for a severity level.
func Label(level int) string {
	if level < 1 || level > 5 {
		return "ESI ?"
	}
	return fmt.Sprintf("ESI %d", level)
}
