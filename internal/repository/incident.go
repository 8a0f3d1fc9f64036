package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	affected_radius_km,
	severity,
	status,
	report_count,
	created_at,
	resolved_at`

// CreateWithReports создает инцидент и привязывает к нему репорты одной транзакцией
func (r *IncidentRepository) CreateWithReports(ctx context.Context, incident *models.Incident, reportIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO incidents (location, affected_radius_km, severity, status, report_count)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		incident.Longitude,
		incident.Latitude,
		incident.AffectedRadiusKm,
		incident.Severity,
		incident.Status,
		incident.ReportCount,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	for _, reportID := range reportIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO incident_reports (incident_id, report_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			incident.ID, reportID,
		)
		if err != nil {
			return fmt.Errorf("failed to link report %s to incident: %w", reportID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident transaction: %w", err)
	}
	return nil
}

// AttachReport привязывает репорт к существующему инциденту и увеличивает счетчик
func (r *IncidentRepository) AttachReport(ctx context.Context, incidentID, reportID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin attach transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx,
		`INSERT INTO incident_reports (incident_id, report_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
		incidentID, reportID,
	)
	if err != nil {
		return fmt.Errorf("failed to link report to incident: %w", err)
	}

	// Счетчик двигаем только если связь действительно новая
	if cmdTag.RowsAffected() > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE incidents SET report_count = report_count + 1 WHERE id = $1;`,
			incidentID,
		)
		if err != nil {
			return fmt.Errorf("failed to increment incident report count: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit attach transaction: %w", err)
	}
	return nil
}

// FindByReportID возвращает инцидент, к которому привязан репорт, или nil
func (r *IncidentRepository) FindByReportID(ctx context.Context, reportID uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE id = (SELECT incident_id FROM incident_reports WHERE report_id = $1);
	`
	err := r.db.QueryRow(ctx, query, reportID).Scan(
		&incident.ID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.AffectedRadiusKm,
		&incident.Severity,
		&incident.Status,
		&incident.ReportCount,
		&incident.CreatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find incident by report id: %w", err)
	}
	return incident, nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.AffectedRadiusKm,
		&incident.Severity,
		&incident.Status,
		&incident.ReportCount,
		&incident.CreatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListActive возвращает активные инциденты, новые первыми
func (r *IncidentRepository) ListActive(ctx context.Context, limit int) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.Latitude,
			&incident.Longitude,
			&incident.AffectedRadiusKm,
			&incident.Severity,
			&incident.Status,
			&incident.ReportCount,
			&incident.CreatedAt,
			&incident.ResolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident rows iteration: %w", err)
	}
	return incidents, nil
}

// Resolve переводит инцидент в статус resolved и фиксирует время
func (r *IncidentRepository) Resolve(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			resolved_at = $1
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to resolve incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for resolve", id)
	}
	return nil
}

// GetReports возвращает все репорты, привязанные к инциденту
func (r *IncidentRepository) GetReports(ctx context.Context, incidentID uuid.UUID) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE id IN (SELECT report_id FROM incident_reports WHERE incident_id = $1)
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident reports: %w", err)
	}
	defer rows.Close()

	return scanReports(rows)
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
