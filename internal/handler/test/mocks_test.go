package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"miblog/internal/models"
	"miblog/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreateBlog(ctx context.Context, ownerID int64, req repository.CreateBlogRequest) (*models.Blog, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogService) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	args := m.Called(ctx, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogService) CreatePost(ctx context.Context, authorID, blogID int64, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, authorID, blogID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockBlogService) GetPost(ctx context.Context, viewerID, blogID, postID int64) (*models.Post, error) {
	args := m.Called(ctx, viewerID, blogID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockBlogService) ListPosts(ctx context.Context, viewerID, blogID int64) ([]models.Post, error) {
	args := m.Called(ctx, viewerID, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Subscribe(ctx context.Context, subscriberID, blogID int64) (*models.Subscription, error) {
	args := m.Called(ctx, subscriberID, blogID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Cancel(ctx context.Context, subscriberID, blogID int64) error {
	args := m.Called(ctx, subscriberID, blogID)
	return args.Error(0)
}

func (m *MockSubscriptionService) IsSubscribed(ctx context.Context, subscriberID, blogID int64) (bool, error) {
	args := m.Called(ctx, subscriberID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionService) ListActive(ctx context.Context, subscriberID int64) ([]models.SubscribedBlog, error) {
	args := m.Called(ctx, subscriberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubscribedBlog), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}
