package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"MedBoard/internal/core/doctors"
)

type postgresDoctorRepo struct {
	db *sql.DB
}

// NewDoctorRepository creates a new PostgreSQL doctor repository
func NewDoctorRepository(db *sql.DB) doctors.Repository {
	return &postgresDoctorRepo{db: db}
}

func (r *postgresDoctorRepo) Create(ctx context.Context, doctor *doctors.Doctor) error {
	query := `
		INSERT INTO doctors (name, specialty, bio)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, doctor.Name, doctor.Specialty, doctor.Bio).
		Scan(&doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *postgresDoctorRepo) List(ctx context.Context) ([]*doctors.Doctor, error) {
	query := `
		SELECT id, name, specialty, bio
		FROM doctors
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	defer rows.Close()

	result := []*doctors.Doctor{}
	for rows.Next() {
		var d doctors.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan doctors: %w", err)
	}

	return result, nil
}

func (r *postgresDoctorRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if affected == 0 {
		return doctors.ErrNotFound
	}

	return nil
}
