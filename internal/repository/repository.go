package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"miblog/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, blogID int64) (*models.Blog, error)
	GetAll(ctx context.Context) ([]models.Blog, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetByBlogID(ctx context.Context, blogID int64) ([]models.Post, error)
}

type SubscriptionRepository interface {
	Upsert(ctx context.Context, subscriberID, blogID int64) (*models.Subscription, error)
	IsActive(ctx context.Context, subscriberID, blogID int64) (bool, error)
	UpdateStatus(ctx context.Context, subscriberID, blogID int64, status string) (int64, error)
	GetActiveBlogs(ctx context.Context, subscriberID int64) ([]models.SubscribedBlog, error)
}

type Repository struct {
	User         UserRepository
	Blog         BlogRepository
	Post         PostRepository
	Subscription SubscriptionRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Blog:         NewBlogRepository(db),
		Post:         NewPostRepository(db),
		Subscription: NewSubscriptionRepository(db),
	}
}

// CreateBlogRequest - форма создания блога, заполняется хендлером
type CreateBlogRequest struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ImageURL          string  `json:"imageUrl"`
	SubscriptionPrice float64 `json:"subscriptionPrice"`
}

// CreatePostRequest - форма создания поста в блоге
type CreatePostRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	IsPaid   bool   `json:"isPaid"`
}
