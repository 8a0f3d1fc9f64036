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

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `
	id,
	incident_id,
	level,
	message,
	affected_radius_km,
	recipients_count,
	delivery_status,
	created_at,
	sent_at`

// Create создает новое оповещение в статусе pending
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (incident_id, level, message, affected_radius_km, recipients_count, delivery_status)
		VALUES ($1, $2, $3, $4, 0, 'pending')
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.IncidentID,
		alert.Level,
		alert.Message,
		alert.AffectedRadiusKm,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает оповещение по его UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.IncidentID,
		&alert.Level,
		&alert.Message,
		&alert.AffectedRadiusKm,
		&alert.RecipientsCount,
		&alert.DeliveryStatus,
		&alert.CreatedAt,
		&alert.SentAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// AddRecipient создает недоставленную запись получателя оповещения
func (r *AlertRepository) AddRecipient(ctx context.Context, alertID, userID uuid.UUID) error {
	query := `
		INSERT INTO alert_recipients (alert_id, user_id, delivered, read)
		VALUES ($1, $2, FALSE, FALSE)
		ON CONFLICT DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, query, alertID, userID); err != nil {
		return fmt.Errorf("failed to add alert recipient: %w", err)
	}
	return nil
}

// MarkDelivered помечает запись получателя как доставленную
func (r *AlertRepository) MarkDelivered(ctx context.Context, alertID, userID uuid.UUID, at time.Time) error {
	query := `
		UPDATE alert_recipients SET
			delivered = TRUE,
			delivered_at = $1
		WHERE alert_id = $2 AND user_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, at, alertID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark recipient delivered: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("recipient %s of alert %s not found", userID, alertID)
	}
	return nil
}

// ListUndelivered возвращает записи получателей, которым оповещение еще не доставлено
func (r *AlertRepository) ListUndelivered(ctx context.Context, alertID uuid.UUID) ([]*models.AlertRecipient, error) {
	query := `
		SELECT alert_id, user_id, delivered, delivered_at, read, read_at
		FROM alert_recipients
		WHERE alert_id = $1 AND delivered = FALSE;
	`
	rows, err := r.db.Query(ctx, query, alertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list undelivered recipients: %w", err)
	}
	defer rows.Close()

	recipients := make([]*models.AlertRecipient, 0)
	for rows.Next() {
		rec := &models.AlertRecipient{}
		err := rows.Scan(&rec.AlertID, &rec.UserID, &rec.Delivered, &rec.DeliveredAt, &rec.Read, &rec.ReadAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipient row: %w", err)
		}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recipient rows iteration: %w", err)
	}
	return recipients, nil
}

// SetDeliveryResult фиксирует агрегированный итог рассылки
func (r *AlertRepository) SetDeliveryResult(ctx context.Context, alertID uuid.UUID, status models.AlertDeliveryStatus, recipientsCount int, sentAt time.Time) error {
	query := `
		UPDATE alerts SET
			delivery_status = $1,
			recipients_count = $2,
			sent_at = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, recipientsCount, sentAt, alertID)
	if err != nil {
		return fmt.Errorf("failed to set alert delivery result: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for delivery result", alertID)
	}
	return nil
}

// MarkRead помечает оповещение прочитанным получателем
func (r *AlertRepository) MarkRead(ctx context.Context, alertID, userID uuid.UUID, at time.Time) error {
	query := `
		UPDATE alert_recipients SET
			read = TRUE,
			read_at = $1
		WHERE alert_id = $2 AND user_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, at, alertID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark alert read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("recipient %s of alert %s not found", userID, alertID)
	}
	return nil
}

// ListRecent возвращает последние оповещения
func (r *AlertRepository) ListRecent(ctx context.Context, limit int) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts ORDER BY created_at DESC LIMIT $1;`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// ListForIncident возвращает все оповещения инцидента
func (r *AlertRepository) ListForIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE incident_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for incident: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// ListForUser возвращает оповещения, адресованные пользователю
func (r *AlertRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Alert, error) {
	query := `
		SELECT
			a.id,
			a.incident_id,
			a.level,
			a.message,
			a.affected_radius_km,
			a.recipients_count,
			a.delivery_status,
			a.created_at,
			a.sent_at
		FROM alerts a
		JOIN alert_recipients ar ON ar.alert_id = a.id
		WHERE ar.user_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts for user: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func scanAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.IncidentID,
			&alert.Level,
			&alert.Message,
			&alert.AffectedRadiusKm,
			&alert.RecipientsCount,
			&alert.DeliveryStatus,
			&alert.CreatedAt,
			&alert.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert rows iteration: %w", err)
	}
	return alerts, nil
}
