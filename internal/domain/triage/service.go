package triage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prioritycare/pretriage/internal/domain/catalog"
	"github.com/prioritycare/pretriage/internal/domain/classify"
	"github.com/prioritycare/pretriage/internal/domain/flow"
)

// PatientDirectory resolves the demographic context that steers the
// question flow and the classification guards.
type PatientDirectory interface {
	Context(ctx context.Context, id uuid.UUID) (flow.PatientContext, error)
}

// TxRunner executes fn atomically. The production wiring runs fn in a
// database transaction; tests pass the calls straight through.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

// Service drives triage sessions: starting or resuming them, recording
// answers, advancing the flow and classifying on termination.
type Service struct {
	sessions  SessionRepository
	answers   AnswerRepository
	patients  PatientDirectory
	questions *catalog.Registry
	nav       *flow.Navigator
	engine    *classify.Engine
	tx        TxRunner
	log       zerolog.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewService(
	sessions SessionRepository,
	answers AnswerRepository,
	patients PatientDirectory,
	questions *catalog.Registry,
	nav *flow.Navigator,
	engine *classify.Engine,
	tx TxRunner,
	log zerolog.Logger,
) *Service {
	if tx == nil {
		tx = func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	}
	return &Service{
		sessions:  sessions,
		answers:   answers,
		patients:  patients,
		questions: questions,
		nav:       nav,
		engine:    engine,
		tx:        tx,
		log:       log,
		locks:     make(map[uuid.UUID]*sessionLock),
	}
}

// lock serializes answer submission per session. The returned function
// releases the lock and drops it from the table once unused.
func (s *Service) lock(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// StartResult is the outcome of starting (or resuming) a session.
type StartResult struct {
	Session  *Session          `json:"session"`
	Question *catalog.Question `json:"question,omitempty"`
	Resumed  bool              `json:"resumed"`
}

// Start opens a triage session for the patient, or resumes the open
// one if it exists. The pending question is recomputed from the answer
// log, never cached.
func (s *Service) Start(ctx context.Context, patientID uuid.UUID) (*StartResult, error) {
	pctx, err := s.patients.Context(ctx, patientID)
	if err != nil {
		return nil, err
	}

	existing, err := s.sessions.ActiveByPatient(ctx, patientID)
	switch {
	case err == nil:
		pending, err := s.pendingQuestion(ctx, existing, pctx)
		if err != nil {
			return nil, err
		}
		return &StartResult{Session: existing, Question: pending, Resumed: true}, nil
	case !errors.Is(err, ErrSessionNotFound):
		return nil, err
	}

	sess := &Session{PatientID: patientID}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	first, err := s.questions.Get(s.nav.EntryQuestion(pctx))
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Str("patient_id", patientID.String()).
		Str("first_question", first.Code).
		Msg("triage session started")
	return &StartResult{Session: sess, Question: &first}, nil
}

// AnswerResult is the outcome of recording one answer.
type AnswerResult struct {
	Answer    *Answer           `json:"answer"`
	Next      *catalog.Question `json:"next_question,omitempty"`
	Completed bool              `json:"completed"`
	Level     *int              `json:"severity_level,omitempty"`
}

// SubmitAnswer validates and records an answer, then either returns
// the next question or, when the flow terminates, classifies the
// session and closes it. Submissions for the same session are
// serialized.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, code string, value catalog.Value, note string) (*AnswerResult, error) {
	question, err := s.questions.Get(code)
	if err != nil {
		return nil, err
	}
	if err := question.Validate(value); err != nil {
		return nil, err
	}

	unlock := s.lock(sessionID)
	defer unlock()

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Completed {
		return nil, ErrSessionCompleted
	}

	recorded, err := s.answers.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history := make(flow.History, 0, len(recorded)+1)
	for _, a := range recorded {
		if a.QuestionCode == code {
			return nil, ErrDuplicateAnswer
		}
		history = append(history, flow.Answered{Code: a.QuestionCode, Value: a.Value})
	}

	answer := &Answer{SessionID: sessionID, QuestionCode: code, Value: value, Note: note}
	history = append(history, flow.Answered{Code: code, Value: value})

	next, navErr := s.nav.Next(history, code, value)
	if navErr != nil && !errors.Is(navErr, flow.ErrStepCeiling) {
		return nil, navErr
	}

	result := &AnswerResult{Answer: answer}
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.answers.Append(ctx, answer); err != nil {
			return err
		}
		if next != "" && navErr == nil {
			q, err := s.questions.Get(next)
			if err != nil {
				return err
			}
			result.Next = &q
			return nil
		}
		return s.finish(ctx, sess, history, result)
	})
	if err != nil {
		return nil, err
	}

	if navErr != nil {
		// The graph is supposed to terminate well before the ceiling;
		// the session was closed with what the rules could still see.
		s.log.Error().
			Str("session_id", sessionID.String()).
			Int("answers", len(history)).
			Msg("step ceiling reached, session force-completed")
	}
	return result, nil
}

// finish classifies the history and closes the session.
func (s *Service) finish(ctx context.Context, sess *Session, history flow.History, result *AnswerResult) error {
	pctx, err := s.patients.Context(ctx, sess.PatientID)
	if err != nil {
		return err
	}
	level := s.engine.Classify(history, pctx)
	if err := s.sessions.Complete(ctx, sess.ID, level); err != nil {
		return err
	}
	result.Completed = true
	result.Level = &level
	s.log.Info().
		Str("session_id", sess.ID.String()).
		Int("severity_level", level).
		Int("answers", len(history)).
		Msg("triage session completed")
	return nil
}

// SessionView is a session with its answer log and, for open sessions,
// the question the patient should answer next.
type SessionView struct {
	Session *Session          `json:"session"`
	Answers []*Answer         `json:"answers"`
	Pending *catalog.Question `json:"pending_question,omitempty"`
}

// GetSession returns the full state of a session.
func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := s.answers.ListBySession(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &SessionView{Session: sess, Answers: answers}
	if !sess.Completed {
		pctx, err := s.patients.Context(ctx, sess.PatientID)
		if err != nil {
			return nil, err
		}
		pending, err := s.pendingFromAnswers(answers, pctx)
		if err != nil {
			return nil, err
		}
		view.Pending = pending
	}
	return view, nil
}

// ListSessions returns a patient's sessions, newest first.
func (s *Service) ListSessions(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Session, int, error) {
	return s.sessions.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) pendingQuestion(ctx context.Context, sess *Session, pctx flow.PatientContext) (*catalog.Question, error) {
	answers, err := s.answers.ListBySession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	return s.pendingFromAnswers(answers, pctx)
}

func (s *Service) pendingFromAnswers(answers []*Answer, pctx flow.PatientContext) (*catalog.Question, error) {
	history := make(flow.History, 0, len(answers))
	for _, a := range answers {
		history = append(history, flow.Answered{Code: a.QuestionCode, Value: a.Value})
	}
	code, err := s.nav.Replay(pctx, history)
	if err != nil && !errors.Is(err, flow.ErrStepCeiling) {
		return nil, err
	}
	if code == "" || err != nil {
		return nil, nil
	}
	q, err := s.questions.Get(code)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
