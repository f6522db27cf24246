package reporting

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) LevelCounts(ctx context.Context, from, to time.Time) (map[int]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.severity_level, COUNT(*)
		FROM triage_session s
		JOIN patient p ON p.id = s.patient_id
		WHERE p.created_at BETWEEN $1 AND $2 AND s.severity_level IS NOT NULL
		GROUP BY s.severity_level`, from, to)
	if err != nil {
		return nil, err
	}
	return collectIntCounts(rows)
}

func (r *repoPG) SexCounts(ctx context.Context, from, to time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.sex, COUNT(*)
		FROM patient p
		WHERE p.created_at BETWEEN $1 AND $2
		  AND EXISTS (SELECT 1 FROM triage_session s WHERE s.patient_id = p.id)
		GROUP BY p.sex`, from, to)
	if err != nil {
		return nil, err
	}
	return collectStringCounts(rows)
}

func (r *repoPG) StateCounts(ctx context.Context, from, to time.Time) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.attention_state, COUNT(*)
		FROM patient p
		WHERE p.created_at BETWEEN $1 AND $2
		  AND EXISTS (SELECT 1 FROM triage_session s WHERE s.patient_id = p.id)
		GROUP BY p.attention_state`, from, to)
	if err != nil {
		return nil, err
	}
	return collectStringCounts(rows)
}

func (r *repoPG) PatientBirthDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.birth_date
		FROM patient p
		WHERE p.created_at BETWEEN $1 AND $2
		  AND EXISTS (SELECT 1 FROM triage_session s WHERE s.patient_id = p.id)`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *repoPG) AvgMinutesByLevel(ctx context.Context, from, to time.Time) (map[int]float64, error) {
	// Abandons distort the wait averages, so they are excluded.
	rows, err := r.pool.Query(ctx, `
		SELECT s.severity_level,
		       AVG(EXTRACT(EPOCH FROM (s.completed_at - s.started_at)) / 60.0)
		FROM triage_session s
		JOIN patient p ON p.id = s.patient_id
		WHERE p.created_at BETWEEN $1 AND $2
		  AND s.completed AND s.completed_at IS NOT NULL
		  AND p.attention_state <> 'ABANDONO'
		GROUP BY s.severity_level`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]float64)
	for rows.Next() {
		var level int
		var minutes float64
		if err := rows.Scan(&level, &minutes); err != nil {
			return nil, err
		}
		out[level] = minutes
	}
	return out, rows.Err()
}

func (r *repoPG) ExportRows(ctx context.Context) ([]*ExportRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.first_name, p.middle_name, p.last_name, p.second_last_name,
		       p.birth_date, p.document_type, p.document_number, p.sex,
		       p.phone_prefix || p.phone, p.eps, p.regimen,
		       s.severity_level, p.attention_state, p.initial_symptoms,
		       s.started_at, s.completed_at,
		       COALESCE(c.first_name || ' ' || c.last_name, ''),
		       COALESCE(c.phone_prefix || c.phone, '')
		FROM patient p
		JOIN LATERAL (
			SELECT * FROM triage_session
			WHERE patient_id = p.id AND completed
			ORDER BY started_at DESC LIMIT 1
		) s ON TRUE
		LEFT JOIN LATERAL (
			SELECT * FROM emergency_contact
			WHERE patient_id = p.id
			ORDER BY last_name, first_name LIMIT 1
		) c ON TRUE
		ORDER BY s.started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*ExportRow
	for rows.Next() {
		var e ExportRow
		if err := rows.Scan(&e.PatientID, &e.FirstName, &e.MiddleName, &e.LastName,
			&e.SecondLastName, &e.BirthDate, &e.DocumentType, &e.DocumentNumber, &e.Sex,
			&e.Phone, &e.EPS, &e.Regimen, &e.Level, &e.AttentionState, &e.InitialSymptoms,
			&e.SessionStart, &e.SessionEnd, &e.EmergencyContact, &e.EmergencyPhone); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

func collectIntCounts(rows pgx.Rows) (map[int]int, error) {
	defer rows.Close()
	out := make(map[int]int)
	for rows.Next() {
		var key, count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		out[key] = count
	}
	return out, rows.Err()
}

func collectStringCounts(rows pgx.Rows) (map[string]int, error) {
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		out[key] = count
	}
	return out, rows.Err()
}
