package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"miblog/internal/models"
)

type SubscriptionRepositoryImpl struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepositoryImpl {
	return &SubscriptionRepositoryImpl{db: db}
}

// Upsert создаёт подписку или переводит существующую запись пары
// (subscriber_id, blog_id) обратно в active. UNIQUE-ограничение в БД
// гарантирует не больше одной записи на пару даже при конкурентных запросах.
func (r *SubscriptionRepositoryImpl) Upsert(ctx context.Context, subscriberID, blogID int64) (*models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (subscriber_id, blog_id, status, subscribed_at)
		VALUES ($1, $2, 'active', now())
		ON CONFLICT (subscriber_id, blog_id)
		DO UPDATE SET status = 'active', subscribed_at = now()
		RETURNING id, subscriber_id, blog_id, status, subscribed_at
	`

	var sub models.Subscription
	err := r.db.GetContext(ctx, &sub, query, subscriberID, blogID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при сохранении подписки: %w", err)
	}

	return &sub, nil
}

func (r *SubscriptionRepositoryImpl) IsActive(ctx context.Context, subscriberID, blogID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions
			WHERE subscriber_id = $1 AND blog_id = $2 AND status = 'active'
		)
	`

	var active bool
	err := r.db.GetContext(ctx, &active, query, subscriberID, blogID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return active, nil
}

// UpdateStatus переводит активную подписку в новый статус и возвращает
// количество затронутых строк (0 - активной подписки не было).
func (r *SubscriptionRepositoryImpl) UpdateStatus(ctx context.Context, subscriberID, blogID int64, status string) (int64, error) {
	query := `
		UPDATE subscriptions
		SET status = $3
		WHERE subscriber_id = $1 AND blog_id = $2 AND status = 'active'
	`

	result, err := r.db.ExecContext(ctx, query, subscriberID, blogID, status)
	if err != nil {
		return 0, fmt.Errorf("ошибка при обновлении статуса подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	return rowsAffected, nil
}

func (r *SubscriptionRepositoryImpl) GetActiveBlogs(ctx context.Context, subscriberID int64) ([]models.SubscribedBlog, error) {
	query := `
		SELECT b.id, b.owner_id, b.title, b.description, b.image_url,
		       b.subscription_price, b.created_at,
		       u.username AS owner_username,
		       s.status, s.subscribed_at
		FROM subscriptions s
		JOIN blogs b ON b.id = s.blog_id
		JOIN users u ON u.id = b.owner_id
		WHERE s.subscriber_id = $1 AND s.status = 'active'
		ORDER BY s.subscribed_at DESC
	`

	var blogs []models.SubscribedBlog
	err := r.db.SelectContext(ctx, &blogs, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок пользователя: %w", err)
	}

	return blogs, nil
}
