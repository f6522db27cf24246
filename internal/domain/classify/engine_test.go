package classify

import (
	"testing"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
	"github.com/prioritycare/pretriage/internal/domain/flow"
)

var (
	adult   = flow.PatientContext{Age: 40, Sex: "M"}
	elderly = flow.PatientContext{Age: 72, Sex: "M"}
)

func answered(pairs ...flow.Answered) flow.History {
	return flow.History(pairs)
}

func TestMostCriticalLevelWins(t *testing.T) {
	e := Default()
	h := answered(
		flow.Answered{Code: "sintomas_leves", Value: catalog.BoolValue(true)},
		flow.Answered{Code: "mareo_severo", Value: catalog.BoolValue(true)},
	)
	if got := e.Classify(h, adult); got != 1 {
		t.Errorf("level = %d, want 1 when a level-1 rule also matches", got)
	}
}

func TestDefaultLevels(t *testing.T) {
	e := Default()
	if got := e.Classify(nil, adult); got != 5 {
		t.Errorf("adult default = %d, want 5", got)
	}
	if got := e.Classify(nil, elderly); got != 3 {
		t.Errorf("elderly default = %d, want 3", got)
	}
}

func TestElderlyGuard(t *testing.T) {
	e := Default()
	h := answered(flow.Answered{
		Code:  "adulto_mayor_ESI45",
		Value: catalog.ListValue("Ninguna de las anteriores"),
	})
	if got := e.Classify(h, elderly); got != 5 {
		t.Errorf("elderly = %d, want 5", got)
	}
	// The same answer from a younger patient must not trigger the
	// guarded rule; nothing matches, so the default applies.
	if got := e.Classify(h, adult); got != 5 {
		t.Errorf("adult = %d, want default 5", got)
	}

	h = answered(flow.Answered{
		Code:  "adulto_mayor_ESI1",
		Value: catalog.ListValue("Dolor en el pecho muy intenso"),
	})
	if got := e.Classify(h, elderly); got != 1 {
		t.Errorf("elderly critical = %d, want 1", got)
	}
	if got := e.Classify(h, adult); got != 5 {
		t.Errorf("guarded rule leaked to adult: level = %d", got)
	}
}

func TestPregnancyGuard(t *testing.T) {
	e := Default()
	symptom := flow.Answered{
		Code:  "sintomas_moderados_embarazo_ESI2",
		Value: catalog.ListValue("Vómitos que no paran"),
	}

	withPregnancy := answered(
		flow.Answered{Code: "embarazo", Value: catalog.BoolValue(true)},
		symptom,
	)
	if got := e.Classify(withPregnancy, flow.PatientContext{Age: 28, Sex: "F"}); got != 2 {
		t.Errorf("pregnant = %d, want 2", got)
	}

	withoutPregnancy := answered(symptom)
	if got := e.Classify(withoutPregnancy, flow.PatientContext{Age: 28, Sex: "F"}); got != 5 {
		t.Errorf("not pregnant = %d, want default 5", got)
	}
}

func TestAllergySeverityBands(t *testing.T) {
	e := Default()
	cases := []struct {
		rating float64
		want   int
	}{
		{10, 1}, {6, 1}, {5, 2}, {4, 2}, {3, 3}, {1, 3},
	}
	for _, tc := range cases {
		h := answered(flow.Answered{Code: "gravedad_alergia", Value: catalog.NumberValue(tc.rating)})
		if got := e.Classify(h, adult); got != tc.want {
			t.Errorf("rating %v: level = %d, want %d", tc.rating, got, tc.want)
		}
	}
}

func TestMultiChoiceOverlap(t *testing.T) {
	e := Default()

	h := answered(flow.Answered{
		Code:  "diabetes_inestabilidad_ESI1",
		Value: catalog.ListValue("Ninguno de los anteriores"),
	})
	if got := e.Classify(h, adult); got != 5 {
		t.Errorf("clean tier answer = %d, want default 5", got)
	}

	h = answered(flow.Answered{
		Code:  "diabetes_inestabilidad_ESI1",
		Value: catalog.ListValue("Ninguno de los anteriores", "Confusión"),
	})
	if got := e.Classify(h, adult); got != 1 {
		t.Errorf("symptom overlap = %d, want 1", got)
	}
}

func TestOncologicalTreatment(t *testing.T) {
	e := Default()
	h := answered(
		flow.Answered{Code: "antecedentes_enfermedades_cronicas", Value: catalog.ListValue("Cáncer")},
		flow.Answered{Code: "esta_en_tratamiento", Value: catalog.BoolValue(true)},
	)
	if got := e.Classify(h, adult); got != 1 {
		t.Errorf("active oncological treatment = %d, want 1", got)
	}
}

func TestNegativeAnswerRules(t *testing.T) {
	e := Default()
	// Denying the worst headache still places the hypertension walk at
	// level 3.
	h := answered(
		flow.Answered{Code: "hta_inicio", Value: catalog.BoolValue(true)},
		flow.Answered{Code: "hta_sintomas_ESI1", Value: catalog.BoolValue(false)},
		flow.Answered{Code: "hta_sintomas_ESI23", Value: catalog.BoolValue(false)},
	)
	if got := e.Classify(h, adult); got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
}

func TestOperatorComparisons(t *testing.T) {
	e, err := NewEngine([]Rule{
		{Level: 2, Checks: []Check{{Question: "q", Operator: OpGTE, Value: catalog.NumberValue(7)}}},
		{Level: 4, Checks: []Check{{Question: "q", Operator: OpLT, Value: catalog.NumberValue(3)}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Classify(answered(flow.Answered{Code: "q", Value: catalog.NumberValue(8)}), adult); got != 2 {
		t.Errorf("gte: level = %d, want 2", got)
	}
	if got := e.Classify(answered(flow.Answered{Code: "q", Value: catalog.NumberValue(2)}), adult); got != 4 {
		t.Errorf("lt: level = %d, want 4", got)
	}
	// Non-numeric answers never satisfy ordering operators.
	if got := e.Classify(answered(flow.Answered{Code: "q", Value: catalog.StringValue("mucho")}), adult); got != 5 {
		t.Errorf("non-numeric: level = %d, want default 5", got)
	}
}

func TestNewEngineRejectsBadRules(t *testing.T) {
	if _, err := NewEngine([]Rule{{Level: 0, Checks: []Check{boolCheck("q", true)}}}); err == nil {
		t.Error("expected error for out-of-range level")
	}
	if _, err := NewEngine([]Rule{{Level: 3}}); err == nil {
		t.Error("expected error for rule without checks")
	}
}

func TestRuleQuestionsExistInCatalog(t *testing.T) {
	reg := catalog.Default()
	for i, r := range DefaultRules() {
		for _, c := range r.Checks {
			if !reg.Has(c.Question) {
				t.Errorf("rule %d references unknown question %q", i, c.Question)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(1); got != "ESI 1" {
		t.Errorf("Label(1) = %q", got)
	}
	if got := Label(0); got != "ESI ?" {
		t.Errorf("Label(0) = %q", got)
	}
}
