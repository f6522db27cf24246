package flow

import (
	"errors"
	"fmt"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
)

// MaxSteps caps the number of answers a session may hold. The flow
// graph is acyclic in practice, so hitting the cap means the
// configuration is broken.
const MaxSteps = 50

// ErrStepCeiling is returned when a session reaches MaxSteps answers
// without terminating.
var ErrStepCeiling = errors.New("question flow exceeded the step ceiling")

// Navigator resolves the next question for a session from its answer
// history alone. It keeps no per-session state; callers replay the
// history they persist.
type Navigator struct {
	catalog *catalog.Registry
	graph   Graph
}

// NewNavigator validates that every target of the flow graph exists in
// the question catalog and returns the navigator.
func NewNavigator(reg *catalog.Registry, g Graph) (*Navigator, error) {
	for code, entry := range g {
		if !reg.Has(code) {
			return nil, fmt.Errorf("%w: flow entry %q", catalog.ErrUnknownQuestion, code)
		}
		for key, target := range entry.OnValue {
			if err := checkTarget(reg, target); err != nil {
				return nil, fmt.Errorf("flow entry %q, branch %q: %w", code, key, err)
			}
		}
		if err := checkTarget(reg, entry.Continuation); err != nil {
			return nil, fmt.Errorf("flow entry %q: %w", code, err)
		}
	}
	return &Navigator{catalog: reg, graph: g}, nil
}

func checkTarget(reg *catalog.Registry, target string) error {
	if target == "" || target == DynamicNextCondition {
		return nil
	}
	if !reg.Has(target) {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownQuestion, target)
	}
	return nil
}

// EntryQuestion picks the first question of a session. Older adults
// start on the dedicated track, then women of any age are asked about
// pregnancy, and everyone else starts on surgical history.
func (n *Navigator) EntryQuestion(p PatientContext) string {
	switch {
	case p.Elderly():
		return "adulto_mayor_ESI1"
	case p.Female():
		return "embarazo"
	default:
		return "cirugias_previas"
	}
}

// Next resolves the question that follows the answer just given. The
// history must already include that answer. An empty code with a nil
// error means the questionnaire is complete.
func (n *Navigator) Next(h History, code string, v catalog.Value) (string, error) {
	if len(h) >= MaxSteps {
		return "", ErrStepCeiling
	}

	var next string
	switch {
	case code == "antecedentes_enfermedades_cronicas":
		next = n.afterChronicSelection(h, v)
	default:
		if c, ok := gateCondition(code); ok {
			next = n.afterGate(h, c, v)
			break
		}
		next = n.graph.Resolve(code, v)
		if next == DynamicNextCondition {
			next = n.nextFromScheduler(h)
		}
	}

	if next != "" && !n.catalog.Has(next) {
		return "", fmt.Errorf("%w: flow produced %q", catalog.ErrUnknownQuestion, next)
	}
	return next, nil
}

// Replay recomputes the pending question of a session from its full
// history. It returns the entry question for empty histories.
func (n *Navigator) Replay(p PatientContext, h History) (string, error) {
	if len(h) == 0 {
		return n.EntryQuestion(p), nil
	}
	last := h[len(h)-1]
	return n.Next(h, last.Code, last.Value)
}

// afterChronicSelection routes the chronic disease selection. Cancer
// takes precedence over every other selection; an empty selection or
// "none" goes straight to allergies; otherwise the highest-priority
// condition's gate comes next.
func (n *Navigator) afterChronicSelection(h History, v catalog.Value) string {
	keys := v.Keys()
	if len(keys) == 0 {
		return "antecedentes_alergias"
	}
	none := false
	cancer := false
	for _, k := range keys {
		switch k {
		case noneLabel:
			none = true
		case cancerLabel:
			cancer = true
		}
	}
	if none {
		return "antecedentes_alergias"
	}
	if cancer {
		return "esta_en_tratamiento"
	}
	selected := SelectedConditions(v)
	for _, c := range evaluationOrder {
		for _, s := range selected {
			if s == c {
				return c.GateQuestion()
			}
		}
	}
	// Only unmapped options were chosen, e.g. "Otro (especificar)".
	return "antecedentes_alergias"
}

// afterGate routes a symptom-gate answer. A gate for a condition the
// session never selected is skipped; an affirmative answer enters the
// condition's sub-flow; a negative one moves to the next pending
// condition.
func (n *Navigator) afterGate(h History, c Condition, v catalog.Value) string {
	selected := false
	for _, s := range sessionConditions(h) {
		if s == c {
			selected = true
			break
		}
	}
	if selected && v.Truthy() {
		return n.graph.Resolve(c.GateQuestion(), v)
	}
	return n.nextFromScheduler(h)
}

// nextFromScheduler hands control to the next pending condition, or
// leaves the condition loop. Sessions that completed at least one
// sub-flow terminate here; the rest continue with allergies.
func (n *Navigator) nextFromScheduler(h History) string {
	if c, ok := nextPendingCondition(n.graph, h); ok {
		return c.GateQuestion()
	}
	if subflowVisited(h) {
		return ""
	}
	return "antecedentes_alergias"
}
