package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"miblog/internal/models"
)

type BlogRepositoryImpl struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepositoryImpl {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (owner_id, title, description, image_url, subscription_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		blog.OwnerID,
		blog.Title,
		blog.Description,
		blog.ImageURL,
		blog.SubscriptionPrice,
	).Scan(&blog.ID, &blog.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании блога: %w", err)
	}

	return nil
}

func (r *BlogRepositoryImpl) GetByID(ctx context.Context, blogID int64) (*models.Blog, error) {
	query := `
		SELECT b.*, u.username AS owner_username
		FROM blogs b
		JOIN users u ON u.id = b.owner_id
		WHERE b.id = $1
	`

	var blog models.Blog
	err := r.db.GetContext(ctx, &blog, query, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("ошибка при получении блога: %w", err)
	}

	return &blog, nil
}

func (r *BlogRepositoryImpl) GetAll(ctx context.Context) ([]models.Blog, error) {
	query := `
		SELECT b.*, u.username AS owner_username
		FROM blogs b
		JOIN users u ON u.id = b.owner_id
		ORDER BY b.created_at DESC
	`

	var blogs []models.Blog
	err := r.db.SelectContext(ctx, &blogs, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении блогов: %w", err)
	}

	return blogs, nil
}
