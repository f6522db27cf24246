package patient

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

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, first_name, middle_name, last_name, second_last_name, birth_date,
	document_type, document_number, sex, phone_prefix, phone, regimen, eps,
	has_insurance, insurance_name, initial_symptoms, attention_state, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.MiddleName, &p.LastName, &p.SecondLastName,
		&p.BirthDate, &p.DocumentType, &p.DocumentNumber, &p.Sex, &p.PhonePrefix,
		&p.Phone, &p.Regimen, &p.EPS, &p.HasInsurance, &p.InsuranceName,
		&p.InitialSymptoms, &p.AttentionState, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patient (
			id, first_name, middle_name, last_name, second_last_name, birth_date,
			document_type, document_number, sex, phone_prefix, phone, regimen, eps,
			has_insurance, insurance_name, initial_symptoms, attention_state
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING created_at`,
		p.ID, p.FirstName, p.MiddleName, p.LastName, p.SecondLastName, p.BirthDate,
		p.DocumentType, p.DocumentNumber, p.Sex, p.PhonePrefix, p.Phone, p.Regimen,
		p.EPS, p.HasInsurance, p.InsuranceName, p.InitialSymptoms, p.AttentionState,
	).Scan(&p.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE patient SET
			first_name=$2, middle_name=$3, last_name=$4, second_last_name=$5,
			birth_date=$6, document_type=$7, document_number=$8, sex=$9,
			phone_prefix=$10, phone=$11, regimen=$12, eps=$13,
			has_insurance=$14, insurance_name=$15, initial_symptoms=$16
		WHERE id = $1`,
		p.ID, p.FirstName, p.MiddleName, p.LastName, p.SecondLastName,
		p.BirthDate, p.DocumentType, p.DocumentNumber, p.Sex,
		p.PhonePrefix, p.Phone, p.Regimen, p.EPS,
		p.HasInsurance, p.InsuranceName, p.InitialSymptoms,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+patientCols+` FROM patient
		ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func (r *repoPG) SearchByDocument(ctx context.Context, number string, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patient WHERE document_number = $1`, number).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+patientCols+` FROM patient
		WHERE document_number = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`, number, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPatients(rows, total)
}

func collectPatients(rows pgx.Rows, total int) ([]*Patient, int, error) {
	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *repoPG) SetAttentionState(ctx context.Context, id uuid.UUID, state string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE patient SET attention_state = $2 WHERE id = $1`, id, state)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) AddContact(ctx context.Context, c *EmergencyContact) error {
	c.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO emergency_contact (
			id, patient_id, first_name, middle_name, last_name, second_last_name,
			phone_prefix, phone, relationship
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		c.ID, c.PatientID, c.FirstName, c.MiddleName, c.LastName, c.SecondLastName,
		c.PhonePrefix, c.Phone, c.Relationship,
	)
	return err
}

func (r *repoPG) ListContacts(ctx context.Context, patientID uuid.UUID) ([]*EmergencyContact, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, patient_id, first_name, middle_name, last_name, second_last_name,
			phone_prefix, phone, relationship
		FROM emergency_contact WHERE patient_id = $1 ORDER BY last_name, first_name`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*EmergencyContact
	for rows.Next() {
		var c EmergencyContact
		if err := rows.Scan(&c.ID, &c.PatientID, &c.FirstName, &c.MiddleName, &c.LastName,
			&c.SecondLastName, &c.PhonePrefix, &c.Phone, &c.Relationship); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

func (r *repoPG) RemoveContact(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM emergency_contact WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContactNotFound
	}
	return nil
}
