package models

import (
	"time"
)

const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Blog struct {
	ID                int64     `json:"id" db:"id"`
	OwnerID           int64     `json:"-" db:"owner_id"`
	Title             string    `json:"title" db:"title"`
	Description       string    `json:"description" db:"description"`
	ImageURL          string    `json:"imageUrl" db:"image_url"`
	SubscriptionPrice float64   `json:"subscriptionPrice" db:"subscription_price"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	// joined from users for listing responses
	OwnerUsername string `json:"ownerUsername" db:"owner_username"`
}

type Post struct {
	ID        int64     `json:"id" db:"id"`
	BlogID    int64     `json:"blogId" db:"blog_id"`
	Title     string    `json:"title" db:"title"`
	Excerpt   string    `json:"excerpt" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	IsPaid    bool      `json:"isPaid" db:"is_paid"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Subscription struct {
	ID           int64     `json:"id" db:"id"`
	SubscriberID int64     `json:"subscriberId" db:"subscriber_id"`
	BlogID       int64     `json:"blogId" db:"blog_id"`
	Status       string    `json:"status" db:"status"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}

// SubscribedBlog - блог вместе с данными активной подписки на него
type SubscribedBlog struct {
	Blog
	Status       string    `json:"status" db:"status"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}
