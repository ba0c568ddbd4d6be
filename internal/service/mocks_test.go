package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"miblog/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, blogID int64) (*models.Blog, error) {
	args := m.Called(ctx, blogID)
	if blog := args.Get(0); blog != nil {
		return blog.(*models.Blog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlogRepository) GetAll(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	if blogs := args.Get(0); blogs != nil {
		return blogs.([]models.Blog), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if post := args.Get(0); post != nil {
		return post.(*models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostRepository) GetByBlogID(ctx context.Context, blogID int64) ([]models.Post, error) {
	args := m.Called(ctx, blogID)
	if posts := args.Get(0); posts != nil {
		return posts.([]models.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Upsert(ctx context.Context, subscriberID, blogID int64) (*models.Subscription, error) {
	args := m.Called(ctx, subscriberID, blogID)
	if sub := args.Get(0); sub != nil {
		return sub.(*models.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubscriptionRepository) IsActive(ctx context.Context, subscriberID, blogID int64) (bool, error) {
	args := m.Called(ctx, subscriberID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) UpdateStatus(ctx context.Context, subscriberID, blogID int64, status string) (int64, error) {
	args := m.Called(ctx, subscriberID, blogID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) GetActiveBlogs(ctx context.Context, subscriberID int64) ([]models.SubscribedBlog, error) {
	args := m.Called(ctx, subscriberID)
	if blogs := args.Get(0); blogs != nil {
		return blogs.([]models.SubscribedBlog), args.Error(1)
	}
	return nil, args.Error(1)
}
