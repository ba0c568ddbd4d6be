package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"miblog/internal/models"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (blog_id, title, excerpt, content, image_url, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		post.BlogID,
		post.Title,
		post.Excerpt,
		post.Content,
		post.ImageURL,
		post.IsPaid,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// GetByBlogID возвращает все посты блога без фильтрации по доступу,
// новые первыми. Фильтрует видимость сервисный слой.
func (r *PostRepositoryImpl) GetByBlogID(ctx context.Context, blogID int64) ([]models.Post, error) {
	query := `
		SELECT * FROM posts
		WHERE blog_id = $1
		ORDER BY created_at DESC
	`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов блога: %w", err)
	}

	return posts, nil
}
