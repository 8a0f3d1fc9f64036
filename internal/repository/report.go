package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/service"
)

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

const reportColumns = `
	id,
	user_id,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	COALESCE(address, ''),
	severity,
	COALESCE(description, ''),
	COALESCE(water_depth_cm, 0),
	COALESCE(image_urls, '{}'),
	verification_status,
	COALESCE(ai_confidence_score, 0),
	community_verifications,
	created_at,
	verified_at`

// Create создает новый репорт в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (user_id, location, address, severity, description, water_depth_cm, image_urls, verification_status)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6, $7, $8, 'pending')
		RETURNING id, verification_status, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.UserID,
		report.Longitude,
		report.Latitude,
		report.Address,
		report.Severity,
		report.Description,
		report.WaterDepthCm,
		report.ImageURLs,
	).Scan(&report.ID, &report.VerificationStatus, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID возвращает репорт по его UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report := &models.Report{}
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.UserID,
		&report.Latitude,
		&report.Longitude,
		&report.Address,
		&report.Severity,
		&report.Description,
		&report.WaterDepthCm,
		&report.ImageURLs,
		&report.VerificationStatus,
		&report.AIConfidenceScore,
		&report.CommunityVerifications,
		&report.CreatedAt,
		&report.VerifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// MarkVerified переводит репорт в статус verified и фиксирует итоговую уверенность
func (r *ReportRepository) MarkVerified(ctx context.Context, id uuid.UUID, confidence float64, at time.Time) error {
	query := `
		UPDATE reports SET
			verification_status = 'verified',
			ai_confidence_score = $1,
			verified_at = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, confidence, at, id)
	if err != nil {
		return fmt.Errorf("failed to mark report verified: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for verify", id)
	}
	return nil
}

// UpdateStatus меняет статус верификации репорта
func (r *ReportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.VerificationStatus) error {
	query := `UPDATE reports SET verification_status = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %s not found for status update", id)
	}
	return nil
}

// IncrementCommunityVerifications увеличивает счетчик подтверждений сообществом
// и возвращает новое значение
func (r *ReportRepository) IncrementCommunityVerifications(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
		UPDATE reports SET community_verifications = community_verifications + 1
		WHERE id = $1
		RETURNING community_verifications;
	`
	var count int
	err := r.db.QueryRow(ctx, query, id).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("report with id %s not found", id)
		}
		return 0, fmt.Errorf("failed to increment community verifications: %w", err)
	}
	return count, nil
}

// FindNearby находит неотклоненные репорты в радиусе от точки, созданные не раньше since
func (r *ReportRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, since time.Time) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE
			ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
			AND created_at >= $4
			AND verification_status != 'rejected'
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusKm*1000, since)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// ListByStatus возвращает репорты с пагинацией и опциональным фильтром по статусу
func (r *ReportRepository) ListByStatus(ctx context.Context, status *models.VerificationStatus, page, pageSize int) ([]*models.Report, error) {
	offset := (page - 1) * pageSize

	var rows pgx.Rows
	var err error
	if status != nil {
		query := `
			SELECT ` + reportColumns + `
			FROM reports
			WHERE verification_status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3;
		`
		rows, err = r.db.Query(ctx, query, *status, pageSize, offset)
	} else {
		query := `
			SELECT ` + reportColumns + `
			FROM reports
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2;
		`
		rows, err = r.db.Query(ctx, query, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

func scanReports(rows pgx.Rows) ([]*models.Report, error) {
	reports := make([]*models.Report, 0)
	for rows.Next() {
		report := &models.Report{}
		err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.Latitude,
			&report.Longitude,
			&report.Address,
			&report.Severity,
			&report.Description,
			&report.WaterDepthCm,
			&report.ImageURLs,
			&report.VerificationStatus,
			&report.AIConfidenceScore,
			&report.CommunityVerifications,
			&report.CreatedAt,
			&report.VerifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error report rows iteration: %w", err)
	}
	return reports, nil
}
