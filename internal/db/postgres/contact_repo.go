package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"MedBoard/internal/core/contact"
)

type postgresContactRepo struct {
	db *sql.DB
}

// NewContactRepository creates a new PostgreSQL contact message repository
func NewContactRepository(db *sql.DB) contact.Repository {
	return &postgresContactRepo{db: db}
}

func (r *postgresContactRepo) Create(ctx context.Context, msg *contact.Message) error {
	query := `
		INSERT INTO contact_messages (full_name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, msg.FullName, msg.Email, msg.Subject, msg.Body).
		Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *postgresContactRepo) List(ctx context.Context) ([]*contact.Message, error) {
	query := `
		SELECT id, full_name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	result := []*contact.Message{}
	for rows.Next() {
		var m contact.Message
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan contact messages: %w", err)
	}

	return result, nil
}
