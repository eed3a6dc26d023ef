package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordCols = `patient_id, name, dob, age, review_date, sex, weight, phone1, phone2, location,
	diagnosis, situs_loop, systemic_veins, pulmonary_veins, atria, atrial_septum, av_valves,
	ventricles, ventricular_septum, outflow_tracts, pulmonary_arteries, aortic_arch, others_field,
	impression, created_at`

const summaryCols = `patient_id, name, age, location`

// PGRepository is the pgx-backed Repository.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) Create(ctx context.Context, rec *Record) error {
	query := `INSERT INTO patients (
			patient_id, name, dob, age, review_date, sex, weight, phone1, phone2, location,
			diagnosis, situs_loop, systemic_veins, pulmonary_veins, atria, atrial_septum, av_valves,
			ventricles, ventricular_septum, outflow_tracts, pulmonary_arteries, aortic_arch, others_field,
			impression
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`

	_, err := r.pool.Exec(ctx, query, columnValues(rec)...)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation on the patient_id primary key
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	query := `SELECT ` + recordCols + ` FROM patients WHERE patient_id = $1`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return rec, nil
}

func (r *PGRepository) Update(ctx context.Context, id string, rec *Record) error {
	// patient_id is the identity of the row; it is matched, never rewritten.
	query := `UPDATE patients SET
			name = $1, dob = $2, age = $3, review_date = $4, sex = $5, weight = $6,
			phone1 = $7, phone2 = $8, location = $9, diagnosis = $10, situs_loop = $11,
			systemic_veins = $12, pulmonary_veins = $13, atria = $14, atrial_septum = $15,
			av_valves = $16, ventricles = $17, ventricular_septum = $18, outflow_tracts = $19,
			pulmonary_arteries = $20, aortic_arch = $21, others_field = $22, impression = $23
		WHERE patient_id = $24`

	args := append(columnValues(rec)[1:], id)
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (r *PGRepository) ListSummaries(ctx context.Context) ([]Summary, error) {
	query := `SELECT ` + summaryCols + ` FROM patients ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (r *PGRepository) SearchByName(ctx context.Context, q string) ([]Summary, error) {
	query := `SELECT ` + summaryCols + ` FROM patients WHERE name ILIKE $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// columnValues lays out the 24 insertable columns in table order. Blank
// strings become NULL so an empty form field never stores "".
func columnValues(rec *Record) []any {
	return []any{
		rec.PatientID,
		rec.Name,
		nullIfEmpty(rec.DOB),
		nullIfEmpty(rec.Age),
		nullIfEmpty(rec.ReviewDate),
		nullIfEmpty(rec.Sex),
		rec.Weight.Ptr(),
		nullIfEmpty(rec.Phone1),
		nullIfEmpty(rec.Phone2),
		nullIfEmpty(rec.Location),
		nullIfEmpty(rec.Diagnosis),
		nullIfEmpty(rec.SitusLoop),
		nullIfEmpty(rec.SystemicVeins),
		nullIfEmpty(rec.PulmonaryVeins),
		nullIfEmpty(rec.Atria),
		nullIfEmpty(rec.AtrialSeptum),
		nullIfEmpty(rec.AVValves),
		nullIfEmpty(rec.Ventricles),
		nullIfEmpty(rec.VentricularSeptum),
		nullIfEmpty(rec.OutflowTracts),
		nullIfEmpty(rec.PulmonaryArteries),
		nullIfEmpty(rec.AorticArch),
		nullIfEmpty(rec.OthersField),
		nullIfEmpty(rec.Impression),
	}
}

func scanRecord(row pgx.Row) (*Record, error) {
	var (
		rec        Record
		dob        *time.Time
		reviewDate *time.Time
		weight     *float64
	)
	err := row.Scan(
		&rec.PatientID, &rec.Name, &dob, &rec.Age, &reviewDate, &rec.Sex, &weight,
		&rec.Phone1, &rec.Phone2, &rec.Location, &rec.Diagnosis, &rec.SitusLoop,
		&rec.SystemicVeins, &rec.PulmonaryVeins, &rec.Atria, &rec.AtrialSeptum,
		&rec.AVValves, &rec.Ventricles, &rec.VentricularSeptum, &rec.OutflowTracts,
		&rec.PulmonaryArteries, &rec.AorticArch, &rec.OthersField, &rec.Impression,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.DOB = isoDate(dob)
	rec.ReviewDate = isoDate(reviewDate)
	if weight != nil {
		rec.Weight = DecimalFrom(*weight)
	}
	return &rec, nil
}

func scanSummaries(rows pgx.Rows) ([]Summary, error) {
	// never nil so an empty result marshals as [], not null
	summaries := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.PatientID, &s.Name, &s.Age, &s.Location); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read summaries: %w", err)
	}
	return summaries, nil
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func isoDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
