package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"miblog/internal/models"
	"miblog/internal/repository"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, subscriberID, blogID int64) (*models.Subscription, error)
	Cancel(ctx context.Context, subscriberID, blogID int64) error
	IsSubscribed(ctx context.Context, subscriberID, blogID int64) (bool, error)
	ListActive(ctx context.Context, subscriberID int64) ([]models.SubscribedBlog, error)
}

type subscriptionService struct {
	blogRepo repository.BlogRepository
	subRepo  repository.SubscriptionRepository
}

func NewSubscriptionService(blogRepo repository.BlogRepository, subRepo repository.SubscriptionRepository) SubscriptionService {
	return &subscriptionService{
		blogRepo: blogRepo,
		subRepo:  subRepo,
	}
}

// Subscribe оформляет подписку на блог. Повторная подписка той же пары
// не плодит записей - та же строка возвращается в active.
func (s *subscriptionService) Subscribe(ctx context.Context, subscriberID, blogID int64) (*models.Subscription, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("ошибка при получении блога: %w", err)
	}

	if blog.OwnerID == subscriberID {
		return nil, ErrSelfSubscription
	}

	// имитация списания, шов для реального платёжного провайдера
	log.Printf("Симулируем оплату %.2f за подписку на блог %q", blog.SubscriptionPrice, blog.Title)

	sub, err := s.subRepo.Upsert(ctx, subscriberID, blogID)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// Cancel переводит активную подписку в cancelled.
func (s *subscriptionService) Cancel(ctx context.Context, subscriberID, blogID int64) error {
	rowsAffected, err := s.subRepo.UpdateStatus(ctx, subscriberID, blogID, models.SubscriptionCancelled)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

func (s *subscriptionService) IsSubscribed(ctx context.Context, subscriberID, blogID int64) (bool, error) {
	return s.subRepo.IsActive(ctx, subscriberID, blogID)
}

func (s *subscriptionService) ListActive(ctx context.Context, subscriberID int64) ([]models.SubscribedBlog, error) {
	return s.subRepo.GetActiveBlogs(ctx, subscriberID)
}
