package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"miblog/internal/models"
	"miblog/internal/repository"
	"miblog/internal/service"
)

type CreateBlogRequest struct {
	Title             string  `json:"title" validate:"required"`
	Description       string  `json:"description" validate:"required"`
	ImageURL          string  `json:"imageUrl"`
	SubscriptionPrice float64 `json:"subscriptionPrice"`
}

// BlogResponse - блог наружу. ownerId отдаётся в строковом виде "user-<n>",
// внутренний числовой id наружу не течёт.
type BlogResponse struct {
	ID                int64     `json:"id"`
	OwnerID           string    `json:"ownerId"`
	OwnerUsername     string    `json:"ownerUsername"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"imageUrl"`
	SubscriptionPrice float64   `json:"subscriptionPrice"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toBlogResponse(blog models.Blog) BlogResponse {
	return BlogResponse{
		ID:                blog.ID,
		OwnerID:           service.FormatIdentity(blog.OwnerID),
		OwnerUsername:     blog.OwnerUsername,
		Title:             blog.Title,
		Description:       blog.Description,
		ImageURL:          blog.ImageURL,
		SubscriptionPrice: blog.SubscriptionPrice,
		CreatedAt:         blog.CreatedAt,
	}
}

func (h *Handlers) GetBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.BlogService.ListBlogs(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	response := make([]BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		response = append(response, toBlogResponse(blog))
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	blogID, err := pathID(r, "blogId")
	if err != nil {
		WriteError(w, "Неверный идентификатор блога", http.StatusBadRequest)
		return
	}

	blog, err := h.BlogService.GetBlog(r.Context(), blogID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, toBlogResponse(*blog), http.StatusOK)
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := viewerID(r)
	if !ok {
		WriteServiceError(w, service.ErrMissingIdentity)
		return
	}

	var req CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Название и описание блога обязательны", http.StatusBadRequest)
		return
	}

	blog, err := h.BlogService.CreateBlog(r.Context(), ownerID, repository.CreateBlogRequest{
		Title:             req.Title,
		Description:       req.Description,
		ImageURL:          req.ImageURL,
		SubscriptionPrice: req.SubscriptionPrice,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Блог успешно создан",
		"blogId":  blog.ID,
	}, http.StatusCreated)
}
