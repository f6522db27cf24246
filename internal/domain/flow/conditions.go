package flow

import (
	"strings"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
)

// Condition identifies a chronic disease with its own question sub-flow.
type Condition string

const (
	ConditionDiabetes        Condition = "diabetes"
	ConditionAsthma          Condition = "asma"
	ConditionStroke          Condition = "acv"
	ConditionHeartFailure    Condition = "insuficiencia_cardiaca"
	ConditionFibromyalgia    Condition = "fibromialgia"
	ConditionHypertension    Condition = "hipertension"
	ConditionCoronaryDisease Condition = "enfermedad_coronaria"
	ConditionCOPD            Condition = "epoc"
)

const (
	gatePrefix  = "sintoma_relacionado_"
	cancerLabel = "Cáncer"
	noneLabel   = "Ninguna de las anteriores"
)

// conditionLabels maps the chronic disease option labels shown to the
// patient onto condition identifiers. Cancer is handled separately and
// has no sub-flow.
var conditionLabels = map[string]Condition{
	"Diabetes 1/2":                    ConditionDiabetes,
	"Asma":                            ConditionAsthma,
	"Accidente cerebrovascular (ACV)": ConditionStroke,
	"Insuficiencia cardíaca":          ConditionHeartFailure,
	"Fibromialgia":                    ConditionFibromyalgia,
	"Hipertensión arterial":           ConditionHypertension,
	"Enfermedad coronaria":            ConditionCoronaryDisease,
	"Enfermedad pulmonar obstructiva crónica (EPOC)": ConditionCOPD,
}

// evaluationOrder fixes the priority in which selected conditions are
// walked, independent of selection order.
var evaluationOrder = []Condition{
	ConditionDiabetes,
	ConditionAsthma,
	ConditionStroke,
	ConditionHeartFailure,
	ConditionFibromyalgia,
	ConditionHypertension,
	ConditionCoronaryDisease,
	ConditionCOPD,
}

// conditionPrefixes maps each condition to the code prefix of its
// sub-flow questions.
var conditionPrefixes = map[Condition]string{
	ConditionDiabetes:        "diabetes_",
	ConditionAsthma:          "asma_",
	ConditionStroke:          "acv_",
	ConditionHeartFailure:    "ic_",
	ConditionFibromyalgia:    "fm_",
	ConditionHypertension:    "hta_",
	ConditionCoronaryDisease: "ec_",
	ConditionCOPD:            "epoc_",
}

// GateQuestion is the yes/no question asking whether the patient has
// symptoms related to the condition right now.
func (c Condition) GateQuestion() string { return gatePrefix + string(c) }

// gateCondition extracts the condition from a gate question code.
func gateCondition(code string) (Condition, bool) {
	if !strings.HasPrefix(code, gatePrefix) {
		return "", false
	}
	c := Condition(strings.TrimPrefix(code, gatePrefix))
	if _, ok := conditionPrefixes[c]; !ok {
		return "", false
	}
	return c, true
}

// SelectedConditions extracts the chronic conditions with sub-flows
// from a chronic disease answer, preserving selection order. Cancer
// and free-text options are skipped.
func SelectedConditions(v catalog.Value) []Condition {
	var out []Condition
	for _, key := range v.Keys() {
		if c, ok := conditionLabels[key]; ok {
			out = append(out, c)
		}
	}
	return out
}

// sessionConditions returns the conditions the session selected on the
// chronic disease question, or nil when it was never answered.
func sessionConditions(h History) []Condition {
	v, ok := h.Value("antecedentes_enfermedades_cronicas")
	if !ok {
		return nil
	}
	return SelectedConditions(v)
}

// conditionEvaluated reports whether a condition's walk is finished: the
// gate was answered no, or the gate was answered yes and at least one
// severity-tier question of its sub-flow has been recorded.
func conditionEvaluated(g Graph, h History, c Condition) bool {
	gate, answered := h.Value(c.GateQuestion())
	if !answered {
		return false
	}
	if !gate.Truthy() {
		return true
	}
	prefix := conditionPrefixes[c]
	for _, a := range h {
		if !strings.HasPrefix(a.Code, prefix) {
			continue
		}
		if severityTier(a.Code) || g.leadsToDynamic(a.Code) {
			return true
		}
	}
	return false
}

func severityTier(code string) bool {
	for _, suffix := range []string{"_ESI1", "_ESI2", "_ESI3", "_ESI45"} {
		if strings.HasSuffix(code, suffix) {
			return true
		}
	}
	return false
}

// nextPendingCondition returns the highest-priority selected condition
// that has not been evaluated yet.
func nextPendingCondition(g Graph, h History) (Condition, bool) {
	selected := sessionConditions(h)
	for _, c := range evaluationOrder {
		for _, s := range selected {
			if s == c && !conditionEvaluated(g, h, c) {
				return c, true
			}
		}
	}
	return "", false
}

// subflowVisited reports whether at least one condition sub-flow was
// actually entered (gate answered yes and a sub-flow question
// recorded). Sessions that visited a sub-flow skip the allergy and
// general-symptom questions when the scheduler runs dry.
func subflowVisited(h History) bool {
	for c, prefix := range conditionPrefixes {
		gate, answered := h.Value(c.GateQuestion())
		if !answered || !gate.Truthy() {
			continue
		}
		for _, a := range h {
			if strings.HasPrefix(a.Code, prefix) {
				return true
			}
		}
	}
	return false
}
