package service

import (
	"miblog/internal/config"
	"miblog/internal/repository"
	"miblog/internal/storage"
)

type Service struct {
	Auth         AuthService
	Blog         BlogService
	Subscription SubscriptionService
	Image        ImageService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:         NewAuthService(rep.User, cfg),
		Blog:         NewBlogService(rep.Blog, rep.Post, rep.Subscription),
		Subscription: NewSubscriptionService(rep.Blog, rep.Subscription),
		Image:        NewImageService(storage),
	}
}
