package triage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
	"github.com/prioritycare/pretriage/internal/domain/classify"
	"github.com/prioritycare/pretriage/internal/domain/flow"
)

type mockSessionRepo struct {
	sessions map[uuid.UUID]*Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[uuid.UUID]*Session)}
}

func (m *mockSessionRepo) Create(_ context.Context, s *Session) error {
	s.ID = uuid.New()
	s.StartedAt = time.Now()
	m.sessions[s.ID] = s
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id uuid.UUID) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockSessionRepo) ActiveByPatient(_ context.Context, patientID uuid.UUID) (*Session, error) {
	for _, s := range m.sessions {
		if s.PatientID == patientID && !s.Completed {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepo) Complete(_ context.Context, id uuid.UUID, level int) error {
	s, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if s.Completed {
		return ErrSessionCompleted
	}
	now := time.Now()
	s.Completed = true
	s.Level = &level
	s.CompletedAt = &now
	return nil
}

func (m *mockSessionRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Session, int, error) {
	var items []*Session
	for _, s := range m.sessions {
		if s.PatientID == patientID {
			cp := *s
			items = append(items, &cp)
		}
	}
	return items, len(items), nil
}

type mockAnswerRepo struct {
	answers map[uuid.UUID][]*Answer
}

func newMockAnswerRepo() *mockAnswerRepo {
	return &mockAnswerRepo{answers: make(map[uuid.UUID][]*Answer)}
}

func (m *mockAnswerRepo) Append(_ context.Context, a *Answer) error {
	for _, existing := range m.answers[a.SessionID] {
		if existing.QuestionCode == a.QuestionCode {
			return ErrDuplicateAnswer
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.answers[a.SessionID] = append(m.answers[a.SessionID], a)
	return nil
}

func (m *mockAnswerRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]*Answer, error) {
	return m.answers[sessionID], nil
}

type mockDirectory struct {
	patients map[uuid.UUID]flow.PatientContext
}

func (m *mockDirectory) Context(_ context.Context, id uuid.UUID) (flow.PatientContext, error) {
	p, ok := m.patients[id]
	if !ok {
		return flow.PatientContext{}, ErrPatientNotFound
	}
	return p, nil
}

type testEnv struct {
	svc      *Service
	sessions *mockSessionRepo
	answers  *mockAnswerRepo
	adultID  uuid.UUID
	womanID  uuid.UUID
	elderID  uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reg := catalog.Default()
	nav, err := flow.NewNavigator(reg, flow.DefaultGraph())
	if err != nil {
		t.Fatal(err)
	}
	env := &testEnv{
		sessions: newMockSessionRepo(),
		answers:  newMockAnswerRepo(),
		adultID:  uuid.New(),
		womanID:  uuid.New(),
		elderID:  uuid.New(),
	}
	dir := &mockDirectory{patients: map[uuid.UUID]flow.PatientContext{
		env.adultID: {Age: 40, Sex: "M"},
		env.womanID: {Age: 28, Sex: "F"},
		env.elderID: {Age: 80, Sex: "M"},
	}}
	env.svc = NewService(env.sessions, env.answers, dir, reg, nav, classify.Default(), nil, zerolog.Nop())
	return env
}

func TestStartSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Resumed {
		t.Error("fresh session reported as resumed")
	}
	if res.Question == nil || res.Question.Code != "cirugias_previas" {
		t.Fatalf("first question = %+v, want cirugias_previas", res.Question)
	}

	res, err = env.svc.Start(ctx, env.elderID)
	if err != nil {
		t.Fatal(err)
	}
	if res.Question.Code != "adulto_mayor_ESI1" {
		t.Errorf("elderly first question = %q", res.Question.Code)
	}
}

func TestStartUnknownPatient(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.svc.Start(context.Background(), uuid.New()); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("err = %v, want ErrPatientNotFound", err)
	}
}

func TestStartResumesActiveSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.SubmitAnswer(ctx, first.Session.ID, "cirugias_previas", catalog.StringValue(""), ""); err != nil {
		t.Fatal(err)
	}

	second, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Resumed {
		t.Error("expected resumed session")
	}
	if second.Session.ID != first.Session.ID {
		t.Error("resume created a new session")
	}
	if second.Question == nil || second.Question.Code != "antecedentes_enfermedades_cronicas" {
		t.Errorf("pending question = %+v, want antecedentes_enfermedades_cronicas", second.Question)
	}
}

func TestSubmitAnswerAdvancesFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.womanID)
	if err != nil {
		t.Fatal(err)
	}
	if start.Question.Code != "embarazo" {
		t.Fatalf("first question = %q", start.Question.Code)
	}

	res, err := env.svc.SubmitAnswer(ctx, start.Session.ID, "embarazo", catalog.BoolValue(true), "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Completed {
		t.Fatal("session completed too early")
	}
	if res.Next == nil || res.Next.Code != "semanas_embarazo" {
		t.Fatalf("next = %+v, want semanas_embarazo", res.Next)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	_, err = env.svc.SubmitAnswer(ctx, start.Session.ID, "no_existe", catalog.BoolValue(true), "")
	if !errors.Is(err, catalog.ErrUnknownQuestion) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
	if got := env.answers.answers[start.Session.ID]; len(got) != 0 {
		t.Fatalf("answer persisted despite unknown code: %v", got)
	}
}

func TestSubmitAnswerInvalidValue(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	_, err = env.svc.SubmitAnswer(ctx, start.Session.ID, "cirugias_previas", catalog.BoolValue(true), "")
	var verr *catalog.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if got := env.answers.answers[start.Session.ID]; len(got) != 0 {
		t.Fatal("invalid answer was persisted")
	}
}

func TestSubmitAnswerDuplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.SubmitAnswer(ctx, start.Session.ID, "cirugias_previas", catalog.StringValue("ninguna"), ""); err != nil {
		t.Fatal(err)
	}
	_, err = env.svc.SubmitAnswer(ctx, start.Session.ID, "cirugias_previas", catalog.StringValue("otra"), "")
	if !errors.Is(err, ErrDuplicateAnswer) {
		t.Fatalf("err = %v, want ErrDuplicateAnswer", err)
	}
}

func TestSubmitAnswerSessionNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.SubmitAnswer(context.Background(), uuid.New(), "embarazo", catalog.BoolValue(false), "")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestPregnancyCriticalRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.womanID)
	if err != nil {
		t.Fatal(err)
	}
	id := start.Session.ID

	steps := []struct {
		code  string
		value catalog.Value
	}{
		{"embarazo", catalog.BoolValue(true)},
		{"semanas_embarazo", catalog.StringValue("28-31 semanas")},
		{"sintomas_graves_embarazo_ESI1", catalog.ListValue("Convulsiones o visión borrosa")},
	}
	var last *AnswerResult
	for _, step := range steps {
		last, err = env.svc.SubmitAnswer(ctx, id, step.code, step.value, "")
		if err != nil {
			t.Fatalf("%s: %v", step.code, err)
		}
	}

	if !last.Completed {
		t.Fatal("expected session completion after critical symptoms")
	}
	if last.Level == nil || *last.Level != 1 {
		t.Fatalf("severity = %v, want 1", last.Level)
	}

	view, err := env.svc.GetSession(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !view.Session.Completed || view.Session.Level == nil || *view.Session.Level != 1 {
		t.Fatalf("stored session = %+v", view.Session)
	}
	if len(view.Answers) != len(steps) {
		t.Errorf("answer log has %d entries, want %d", len(view.Answers), len(steps))
	}
	if view.Pending != nil {
		t.Error("completed session still has a pending question")
	}

	// Further answers are rejected.
	if _, err := env.svc.SubmitAnswer(ctx, id, "sintomas_leves", catalog.BoolValue(true), ""); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("err = %v, want ErrSessionCompleted", err)
	}
}

func TestGeriatricAllTiersDeniedRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.elderID)
	if err != nil {
		t.Fatal(err)
	}
	if start.Question.Code != "adulto_mayor_ESI1" {
		t.Fatalf("first question = %q", start.Question.Code)
	}
	id := start.Session.ID

	none := catalog.ListValue("Ninguna de las anteriores")
	tiers := []string{
		"adulto_mayor_ESI1",
		"adulto_mayor_ESI2",
		"adulto_mayor_ESI3",
		"adulto_mayor_ESI45",
	}
	var last *AnswerResult
	for i, code := range tiers {
		last, err = env.svc.SubmitAnswer(ctx, id, code, none, "")
		if err != nil {
			t.Fatalf("%s: %v", code, err)
		}
		if i < len(tiers)-1 {
			if last.Completed {
				t.Fatalf("session completed at %s", code)
			}
			if last.Next == nil || last.Next.Code != tiers[i+1] {
				t.Fatalf("after %s next = %+v, want %s", code, last.Next, tiers[i+1])
			}
		}
	}

	if !last.Completed {
		t.Fatal("denying every tier must terminate the questionnaire")
	}
	if last.Level == nil || *last.Level != 5 {
		t.Fatalf("severity = %v, want 5 after all tiers denied", last.Level)
	}
}

func TestChronicConditionRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	id := start.Session.ID

	res, err := env.svc.SubmitAnswer(ctx, id, "cirugias_previas", catalog.StringValue(""), "")
	if err != nil {
		t.Fatal(err)
	}
	res, err = env.svc.SubmitAnswer(ctx, id, "antecedentes_enfermedades_cronicas",
		catalog.ListValue("Asma"), "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Next.Code != "sintoma_relacionado_asma" {
		t.Fatalf("next = %q, want asthma gate", res.Next.Code)
	}
	res, err = env.svc.SubmitAnswer(ctx, id, "sintoma_relacionado_asma", catalog.BoolValue(true), "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Next.Code != "asma_inestabilidad_ESI1" {
		t.Fatalf("next = %q, want asthma sub-flow entry", res.Next.Code)
	}
	res, err = env.svc.SubmitAnswer(ctx, id, "asma_inestabilidad_ESI1",
		catalog.ListValue("Labios azulados"), "")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Completed || res.Level == nil || *res.Level != 1 {
		t.Fatalf("result = %+v, want completion at level 1", res)
	}
}

func TestGetSessionPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	start, err := env.svc.Start(ctx, env.adultID)
	if err != nil {
		t.Fatal(err)
	}
	view, err := env.svc.GetSession(ctx, start.Session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if view.Pending == nil || view.Pending.Code != "cirugias_previas" {
		t.Fatalf("pending = %+v, want cirugias_previas", view.Pending)
	}
}
