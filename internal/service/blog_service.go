package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"miblog/internal/models"
	"miblog/internal/repository"
)

type BlogService interface {
	CreateBlog(ctx context.Context, ownerID int64, req repository.CreateBlogRequest) (*models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (*models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	CreatePost(ctx context.Context, authorID, blogID int64, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, viewerID, blogID, postID int64) (*models.Post, error)
	ListPosts(ctx context.Context, viewerID, blogID int64) ([]models.Post, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
	postRepo repository.PostRepository
	subRepo  repository.SubscriptionRepository
}

func NewBlogService(blogRepo repository.BlogRepository, postRepo repository.PostRepository, subRepo repository.SubscriptionRepository) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		postRepo: postRepo,
		subRepo:  subRepo,
	}
}

func (s *blogService) CreateBlog(ctx context.Context, ownerID int64, req repository.CreateBlogRequest) (*models.Blog, error) {
	if req.Title == "" || req.Description == "" {
		return nil, ErrInvalidInput
	}

	// цена всегда неотрицательная, мусор на входе превращается в бесплатный блог
	price := req.SubscriptionPrice
	if price < 0 {
		price = 0
	}

	blog := &models.Blog{
		OwnerID:           ownerID,
		Title:             req.Title,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		SubscriptionPrice: price,
	}

	err := s.blogRepo.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

func (s *blogService) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	return blog, nil
}

func (s *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepo.GetAll(ctx)
}

// CreatePost проверяет владение блогом до записи в БД: заявка клиента
// "я владелец" не значит ничего, сверяемся с реестром.
func (s *blogService) CreatePost(ctx context.Context, authorID, blogID int64, req repository.CreatePostRequest) (*models.Post, error) {
	if req.Title == "" || req.Content == "" {
		return nil, ErrInvalidInput
	}

	blog, err := s.GetBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if blog.OwnerID != authorID {
		return nil, ErrForbidden
	}

	post := &models.Post{
		BlogID:   blogID,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		IsPaid:   req.IsPaid,
	}

	err = s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *blogService) GetPost(ctx context.Context, viewerID, blogID, postID int64) (*models.Post, error) {
	blog, err := s.GetBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// пост чужого блога по этому URL не существует
	if post.BlogID != blogID {
		return nil, ErrPostNotFound
	}

	hasSubscription, err := s.hasActiveSubscription(ctx, viewerID, blog, post.IsPaid)
	if err != nil {
		return nil, err
	}

	if !CanViewPost(viewerID, blog, post, hasSubscription) {
		return nil, ErrSubscriptionRequired
	}

	return post, nil
}

func (s *blogService) ListPosts(ctx context.Context, viewerID, blogID int64) ([]models.Post, error) {
	blog, err := s.GetBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByBlogID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	hasSubscription, err := s.hasActiveSubscription(ctx, viewerID, blog, true)
	if err != nil {
		return nil, err
	}

	return FilterVisiblePosts(viewerID, blog, posts, hasSubscription), nil
}

// hasActiveSubscription ходит в реестр подписок только когда от ответа
// что-то зависит: не владелец, блог платный, контент помечен платным.
func (s *blogService) hasActiveSubscription(ctx context.Context, viewerID int64, blog *models.Blog, paidContent bool) (bool, error) {
	if viewerID == blog.OwnerID || blog.SubscriptionPrice == 0 || !paidContent {
		return false, nil
	}

	active, err := s.subRepo.IsActive(ctx, viewerID, blog.ID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return active, nil
}
