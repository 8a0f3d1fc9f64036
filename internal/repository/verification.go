package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/service"
)

type VerificationRepository struct {
	db *pgxpool.Pool
}

func NewVerificationRepository(db *pgxpool.Pool) service.VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create добавляет запись в журнал проверок
func (r *VerificationRepository) Create(ctx context.Context, verification *models.Verification) error {
	query := `
		INSERT INTO verifications (report_id, verifier_user_id, verification_type, result, confidence_score, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		verification.ReportID,
		verification.VerifierUserID,
		verification.Type,
		verification.Result,
		verification.ConfidenceScore,
		verification.Notes,
	).Scan(&verification.ID, &verification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create verification record: %w", err)
	}
	return nil
}

// ListByReport возвращает журнал проверок репорта
func (r *VerificationRepository) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*models.Verification, error) {
	query := `
		SELECT id, report_id, verifier_user_id, verification_type, result, confidence_score, COALESCE(notes, ''), created_at
		FROM verifications
		WHERE report_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifications: %w", err)
	}
	defer rows.Close()

	verifications := make([]*models.Verification, 0)
	for rows.Next() {
		v := &models.Verification{}
		err := rows.Scan(&v.ID, &v.ReportID, &v.VerifierUserID, &v.Type, &v.Result, &v.ConfidenceScore, &v.Notes, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification row: %w", err)
		}
		verifications = append(verifications, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error verification rows iteration: %w", err)
	}
	return verifications, nil
}
