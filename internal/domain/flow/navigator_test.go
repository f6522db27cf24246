package flow

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
)

func newTestNavigator(t *testing.T) *Navigator {
	t.Helper()
	nav, err := NewNavigator(catalog.Default(), DefaultGraph())
	if err != nil {
		t.Fatalf("building navigator: %v", err)
	}
	return nav
}

func TestGraphTargetsExistInCatalog(t *testing.T) {
	newTestNavigator(t)
}

func TestEntryQuestion(t *testing.T) {
	nav := newTestNavigator(t)
	cases := []struct {
		age  int
		sex  string
		want string
	}{
		{70, "M", "adulto_mayor_ESI1"},
		{70, "F", "adulto_mayor_ESI1"},
		{65, "M", "cirugias_previas"},
		{30, "F", "embarazo"},
		{30, "M", "cirugias_previas"},
	}
	for _, tc := range cases {
		got := nav.EntryQuestion(PatientContext{Age: tc.age, Sex: tc.sex})
		if got != tc.want {
			t.Errorf("entry for age=%d sex=%s: got %q, want %q", tc.age, tc.sex, got, tc.want)
		}
	}
}

func TestResolveMultiChoiceSelectionOrder(t *testing.T) {
	g := DefaultGraph()

	// A branch hit on any selected option wins over the continuation.
	next := g.Resolve("sintomas_graves_embarazo_ESI1",
		catalog.ListValue("Fiebre alta con escalofríos", "Ninguna de las anteriores"))
	if next != "sintomas_moderados_embarazo_ESI2" {
		t.Errorf("next = %q, want branch on matching option", next)
	}

	// No branch hit falls through to the continuation, here terminal.
	next = g.Resolve("sintomas_graves_embarazo_ESI1",
		catalog.ListValue("Fiebre alta con escalofríos"))
	if next != "" {
		t.Errorf("next = %q, want terminal", next)
	}
}

func TestResolveExplicitTerminalBranch(t *testing.T) {
	g := DefaultGraph()
	if next := g.Resolve("mareo_severo", catalog.BoolValue(true)); next != "" {
		t.Errorf("affirmative severe dizziness should terminate, got %q", next)
	}
	if next := g.Resolve("mareo_severo", catalog.BoolValue(false)); next != "escalofrios_severos" {
		t.Errorf("next = %q, want escalofrios_severos", next)
	}
}

func TestChronicSelectionRouting(t *testing.T) {
	nav := newTestNavigator(t)

	cases := []struct {
		name  string
		value catalog.Value
		want  string
	}{
		{"empty selection", catalog.ListValue(), "antecedentes_alergias"},
		{"none of the above", catalog.ListValue("Ninguna de las anteriores"), "antecedentes_alergias"},
		{"cancer takes precedence", catalog.ListValue("Asma", "Cáncer"), "esta_en_tratamiento"},
		{"priority order not selection order", catalog.ListValue("Hipertensión arterial", "Diabetes 1/2"), "sintoma_relacionado_diabetes"},
		{"only unmapped options", catalog.ListValue("Otro (especificar)"), "antecedentes_alergias"},
	}
	for _, tc := range cases {
		h := History{{Code: "antecedentes_enfermedades_cronicas", Value: tc.value}}
		next, err := nav.Next(h, "antecedentes_enfermedades_cronicas", tc.value)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if next != tc.want {
			t.Errorf("%s: next = %q, want %q", tc.name, next, tc.want)
		}
	}
}

func TestGateForUnselectedConditionIsSkipped(t *testing.T) {
	nav := newTestNavigator(t)
	h := History{
		{Code: "antecedentes_enfermedades_cronicas", Value: catalog.ListValue("Asma")},
		{Code: "sintoma_relacionado_diabetes", Value: catalog.BoolValue(true)},
	}
	next, err := nav.Next(h, "sintoma_relacionado_diabetes", catalog.BoolValue(true))
	if err != nil {
		t.Fatal(err)
	}
	if next != "sintoma_relacionado_asma" {
		t.Errorf("next = %q, want the pending asthma gate", next)
	}
}

func TestGateDeniedAdvancesToNextCondition(t *testing.T) {
	nav := newTestNavigator(t)

	// Diabetes and asthma both selected; the diabetes gate answered no
	// must advance to the asthma gate, not to allergies.
	h := History{
		{Code: "antecedentes_enfermedades_cronicas", Value: catalog.ListValue("Diabetes 1/2", "Asma")},
		{Code: "sintoma_relacionado_diabetes", Value: catalog.BoolValue(false)},
	}
	next, err := nav.Next(h, "sintoma_relacionado_diabetes", catalog.BoolValue(false))
	if err != nil {
		t.Fatal(err)
	}
	if next != "sintoma_relacionado_asma" {
		t.Errorf("next = %q, want the asthma gate after diabetes gate denied", next)
	}

	// Both gates answered no leaves the condition loop for allergies.
	h = append(h, Answered{Code: "sintoma_relacionado_asma", Value: catalog.BoolValue(false)})
	next, err = nav.Next(h, "sintoma_relacionado_asma", catalog.BoolValue(false))
	if err != nil {
		t.Fatal(err)
	}
	if next != "antecedentes_alergias" {
		t.Errorf("next = %q, want antecedentes_alergias when no condition is pending", next)
	}
}

func TestConditionSubflowWalk(t *testing.T) {
	nav := newTestNavigator(t)
	selection := catalog.ListValue("Diabetes 1/2", "Hipertensión arterial")

	h := History{{Code: "antecedentes_enfermedades_cronicas", Value: selection}}
	step := func(code string, v catalog.Value) string {
		t.Helper()
		h = append(h, Answered{Code: code, Value: v})
		next, err := nav.Next(h, code, v)
		if err != nil {
			t.Fatalf("next after %s: %v", code, err)
		}
		return next
	}

	if next, err := nav.Next(h, "antecedentes_enfermedades_cronicas", selection); err != nil || next != "sintoma_relacionado_diabetes" {
		t.Fatalf("after selection: next = %q, err = %v", next, err)
	}

	if next := step("sintoma_relacionado_diabetes", catalog.BoolValue(true)); next != "diabetes_inestabilidad_ESI1" {
		t.Fatalf("gate yes should enter sub-flow, got %q", next)
	}
	if next := step("diabetes_inestabilidad_ESI1", catalog.ListValue("Ninguno de los anteriores")); next != "diabetes_sintomas_ESI2" {
		t.Fatalf("clean tier should descend, got %q", next)
	}
	// A symptom hit ends the diabetes walk and hands control to the
	// next pending condition.
	if next := step("diabetes_sintomas_ESI2", catalog.ListValue("Vómitos persistentes")); next != "sintoma_relacionado_hipertension" {
		t.Fatalf("after diabetes walk: got %q, want hypertension gate", next)
	}
	if next := step("sintoma_relacionado_hipertension", catalog.BoolValue(true)); next != "hta_inicio" {
		t.Fatalf("hypertension gate yes: got %q", next)
	}
	if next := step("hta_inicio", catalog.BoolValue(true)); next != "hta_sintomas_ESI1" {
		t.Fatalf("hta_inicio yes: got %q", next)
	}
	if next := step("hta_sintomas_ESI1", catalog.BoolValue(false)); next != "hta_sintomas_ESI23" {
		t.Fatalf("hta ESI1 no: got %q", next)
	}
	// Both conditions evaluated and a sub-flow was visited, so the
	// questionnaire ends instead of continuing with allergies.
	if next := step("hta_sintomas_ESI23", catalog.BoolValue(true)); next != "" {
		t.Fatalf("expected terminal after last condition, got %q", next)
	}
}

func TestAllGatesDeniedContinuesWithAllergies(t *testing.T) {
	nav := newTestNavigator(t)
	h := History{
		{Code: "antecedentes_enfermedades_cronicas", Value: catalog.ListValue("Asma")},
		{Code: "sintoma_relacionado_asma", Value: catalog.BoolValue(false)},
	}
	next, err := nav.Next(h, "sintoma_relacionado_asma", catalog.BoolValue(false))
	if err != nil {
		t.Fatal(err)
	}
	if next != "antecedentes_alergias" {
		t.Errorf("next = %q, want antecedentes_alergias", next)
	}
}

func TestGeneralFlowTerminates(t *testing.T) {
	nav := newTestNavigator(t)
	reg := catalog.Default()

	// Walk the full general flow for a 30 year old woman answering the
	// least eventful option everywhere.
	answers := []Answered{
		{Code: "embarazo", Value: catalog.BoolValue(false)},
		{Code: "cirugias_previas", Value: catalog.StringValue("")},
		{Code: "antecedentes_enfermedades_cronicas", Value: catalog.ListValue("Ninguna de las anteriores")},
		{Code: "antecedentes_alergias", Value: catalog.StringValue("Ninguna de las anteriores")},
		{Code: "mareo_severo", Value: catalog.BoolValue(false)},
		{Code: "escalofrios_severos", Value: catalog.BoolValue(false)},
		{Code: "cianosis", Value: catalog.BoolValue(false)},
		{Code: "palpitaciones_rápidas", Value: catalog.BoolValue(false)},
		{Code: "dificultad_respiratoria", Value: catalog.BoolValue(false)},
		{Code: "dolor_pecho", Value: catalog.BoolValue(false)},
		{Code: "dolor_abdominal", Value: catalog.BoolValue(false)},
		{Code: "tos_sangre", Value: catalog.BoolValue(false)},
		{Code: "sintoma_principal", Value: catalog.StringValue("Ninguno de los anteriores")},
		{Code: "confusion", Value: catalog.BoolValue(false)},
		{Code: "sintomas_leves", Value: catalog.BoolValue(false)},
	}

	pctx := PatientContext{Age: 30, Sex: "F"}
	current := nav.EntryQuestion(pctx)
	var h History
	for i, a := range answers {
		if current != a.Code {
			t.Fatalf("step %d: expected question %q, navigator asked %q", i, a.Code, current)
		}
		q, err := reg.Get(a.Code)
		if err != nil {
			t.Fatal(err)
		}
		if err := q.Validate(a.Value); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		h = append(h, a)
		current, err = nav.Next(h, a.Code, a.Value)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if current != "" {
		t.Fatalf("flow did not terminate, pending %q", current)
	}
	if len(h) >= MaxSteps {
		t.Fatalf("general flow needs %d steps, ceiling is %d", len(h), MaxSteps)
	}
}

func TestStepCeiling(t *testing.T) {
	nav := newTestNavigator(t)
	h := make(History, 0, MaxSteps)
	for i := 0; i < MaxSteps; i++ {
		h = append(h, Answered{Code: fmt.Sprintf("q%d", i), Value: catalog.BoolValue(false)})
	}
	_, err := nav.Next(h, "sintomas_leves", catalog.BoolValue(false))
	if !errors.Is(err, ErrStepCeiling) {
		t.Fatalf("err = %v, want ErrStepCeiling", err)
	}
}

func TestReplay(t *testing.T) {
	nav := newTestNavigator(t)
	pctx := PatientContext{Age: 40, Sex: "M"}

	code, err := nav.Replay(pctx, nil)
	if err != nil || code != "cirugias_previas" {
		t.Fatalf("empty history replay = %q, %v", code, err)
	}

	h := History{
		{Code: "cirugias_previas", Value: catalog.StringValue("Apendicectomía en 2018")},
	}
	code, err = nav.Replay(pctx, h)
	if err != nil || code != "antecedentes_enfermedades_cronicas" {
		t.Fatalf("replay = %q, %v", code, err)
	}
}
