package postgres

import (
	"context"
	"errors"

	"go-internhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, title, message, type, priority, target_audience, is_active,
	scheduled_at, expires_at, action_url, action_text, created_by, created_at, updated_at`

type notificationRepo struct {
	db PgxPool
}

func NewNotificationRepository(db PgxPool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, notification *domain.Notification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		notification.ID, notification.Title, notification.Message, notification.Type,
		notification.Priority, notification.TargetAudience, notification.IsActive,
		notification.ScheduledAt, notification.ExpiresAt, notification.ActionURL,
		notification.ActionText, notification.CreatedBy, notification.CreatedAt,
		notification.UpdatedAt,
	)
	return err
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	var n domain.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.TargetAudience,
		&n.IsActive, &n.ScheduledAt, &n.ExpiresAt, &n.ActionURL, &n.ActionText,
		&n.CreatedBy, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) Fetch(ctx context.Context, targetAudience string, activeOnly bool, limit, offset int) ([]domain.Notification, int64, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
              WHERE ($1 = '' OR target_audience = $1 OR target_audience = 'all')
                AND (NOT $2 OR (is_active AND (expires_at IS NULL OR expires_at > NOW())))
              ORDER BY created_at DESC
              LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, targetAudience, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Message, &n.Type, &n.Priority, &n.TargetAudience,
			&n.IsActive, &n.ScheduledAt, &n.ExpiresAt, &n.ActionURL, &n.ActionText,
			&n.CreatedBy, &n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications
                   WHERE ($1 = '' OR target_audience = $1 OR target_audience = 'all')
                     AND (NOT $2 OR (is_active AND (expires_at IS NULL OR expires_at > NOW())))`
	if err := r.db.QueryRow(ctx, countQuery, targetAudience, activeOnly).Scan(&total); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepo) Update(ctx context.Context, notification *domain.Notification) error {
	query := `UPDATE notifications
              SET title = $2, message = $3, type = $4, priority = $5, target_audience = $6,
                  is_active = $7, expires_at = $8, action_url = $9, action_text = $10, updated_at = $11
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		notification.ID, notification.Title, notification.Message, notification.Type,
		notification.Priority, notification.TargetAudience, notification.IsActive,
		notification.ExpiresAt, notification.ActionURL, notification.ActionText,
		notification.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
