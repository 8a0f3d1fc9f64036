package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `
	id,
	phone_number,
	platform,
	platform_id,
	language_code,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	alert_subscribed,
	alert_radius_km,
	credibility_score,
	created_at,
	last_active`

// Create создает нового пользователя в бд
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (phone_number, platform, platform_id, language_code, location, alert_subscribed, alert_radius_km)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8)
		RETURNING id, credibility_score, created_at, last_active;
	`
	err := r.db.QueryRow(ctx, query,
		user.PhoneNumber,
		user.Platform,
		user.PlatformID,
		user.LanguageCode,
		user.Longitude,
		user.Latitude,
		user.AlertSubscribed,
		user.AlertRadiusKm,
	).Scan(&user.ID, &user.CredibilityScore, &user.CreatedAt, &user.LastActive)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя по его UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return r.scanOne(r.db.QueryRow(ctx, query, id), id.String())
}

// GetByPlatformID возвращает пользователя по платформе и идентификатору в ней
func (r *UserRepository) GetByPlatformID(ctx context.Context, platform models.PlatformType, platformID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE platform = $1 AND platform_id = $2;`
	return r.scanOne(r.db.QueryRow(ctx, query, platform, platformID), platformID)
}

func (r *UserRepository) scanOne(row pgx.Row, key string) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.Platform,
		&user.PlatformID,
		&user.LanguageCode,
		&user.Latitude,
		&user.Longitude,
		&user.AlertSubscribed,
		&user.AlertRadiusKm,
		&user.CredibilityScore,
		&user.CreatedAt,
		&user.LastActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s not found", key)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateLocation обновляет координаты пользователя
func (r *UserRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lon float64) error {
	query := `
		UPDATE users SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_active = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, lon, lat, id)
	if err != nil {
		return fmt.Errorf("failed to update user location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for location update", id)
	}
	return nil
}

// SetAlertSubscription включает или выключает подписку на оповещения
func (r *UserRepository) SetAlertSubscription(ctx context.Context, id uuid.UUID, subscribed bool) error {
	query := `UPDATE users SET alert_subscribed = $1, last_active = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, subscribed, id)
	if err != nil {
		return fmt.Errorf("failed to set alert subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for subscription update", id)
	}
	return nil
}

// UpdateCredibilityScore сдвигает рейтинг доверия пользователя на delta
func (r *UserRepository) UpdateCredibilityScore(ctx context.Context, id uuid.UUID, delta int) error {
	query := `UPDATE users SET credibility_score = credibility_score + $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to update credibility score: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for credibility update", id)
	}
	return nil
}

// FindWithinRadius находит пользователей в радиусе от точки,
// опционально только подписанных на оповещения
func (r *UserRepository) FindWithinRadius(ctx context.Context, lat, lon, radiusKm float64, subscribedOnly bool) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE
			location IS NOT NULL
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
			AND ($4 = FALSE OR alert_subscribed = TRUE);
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusKm*1000, subscribedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to find users within radius: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID,
			&user.PhoneNumber,
			&user.Platform,
			&user.PlatformID,
			&user.LanguageCode,
			&user.Latitude,
			&user.Longitude,
			&user.AlertSubscribed,
			&user.AlertRadiusKm,
			&user.CredibilityScore,
			&user.CreatedAt,
			&user.LastActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error user rows iteration: %w", err)
	}
	return users, nil
}
