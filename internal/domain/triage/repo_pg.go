package triage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prioritycare/pretriage/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Session Repository ===========

type sessionRepoPG struct{ pool *pgxpool.Pool }

func NewSessionRepoPG(pool *pgxpool.Pool) SessionRepository { return &sessionRepoPG{pool: pool} }

func (r *sessionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const sessionCols = `id, patient_id, completed, severity_level, started_at, completed_at`

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.PatientID, &s.Completed, &s.Level, &s.StartedAt, &s.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepoPG) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO triage_session (id, patient_id)
		VALUES ($1, $2)
		RETURNING started_at`,
		s.ID, s.PatientID).Scan(&s.StartedAt)
}

func (r *sessionRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	return scanSession(r.conn(ctx).QueryRow(ctx,
		`SELECT `+sessionCols+` FROM triage_session WHERE id = $1`, id))
}

func (r *sessionRepoPG) ActiveByPatient(ctx context.Context, patientID uuid.UUID) (*Session, error) {
	return scanSession(r.conn(ctx).QueryRow(ctx, `
		SELECT `+sessionCols+` FROM triage_session
		WHERE patient_id = $1 AND NOT completed
		ORDER BY started_at DESC LIMIT 1`, patientID))
}

func (r *sessionRepoPG) Complete(ctx context.Context, id uuid.UUID, level int) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE triage_session
		SET completed = TRUE, severity_level = $2, completed_at = NOW()
		WHERE id = $1 AND NOT completed`, id, level)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionCompleted
	}
	return nil
}

func (r *sessionRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Session, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM triage_session WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+sessionCols+` FROM triage_session
		WHERE patient_id = $1
		ORDER BY started_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

// =========== Answer Repository ===========

type answerRepoPG struct{ pool *pgxpool.Pool }

func NewAnswerRepoPG(pool *pgxpool.Pool) AnswerRepository { return &answerRepoPG{pool: pool} }

func (r *answerRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const answerCols = `id, session_id, question_code, value, note, created_at`

func scanAnswer(row pgx.Row) (*Answer, error) {
	var a Answer
	err := row.Scan(&a.ID, &a.SessionID, &a.QuestionCode, &a.Value, &a.Note, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *answerRepoPG) Append(ctx context.Context, a *Answer) error {
	a.ID = uuid.New()
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO triage_answer (id, session_id, question_code, value, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		a.ID, a.SessionID, a.QuestionCode, a.Value, a.Note).Scan(&a.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateAnswer
	}
	return err
}

func (r *answerRepoPG) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*Answer, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+answerCols+` FROM triage_answer
		WHERE session_id = $1
		ORDER BY created_at, id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
