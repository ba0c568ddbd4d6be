package handlers

import (
	"encoding/json"
	"net/http"

	"miblog/internal/repository"
	"miblog/internal/service"
)

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl"`
	IsPaid   bool   `json:"isPaid"`
}

// GetPosts отдаёт посты блога, отфильтрованные политикой доступа:
// закрытые от зрителя посты в ответ не попадают вовсе.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := viewerID(r)
	if !ok {
		WriteServiceError(w, service.ErrMissingIdentity)
		return
	}

	blogID, err := pathID(r, "blogId")
	if err != nil {
		WriteError(w, "Неверный идентификатор блога", http.StatusBadRequest)
		return
	}

	posts, err := h.BlogService.ListPosts(r.Context(), userID, blogID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := viewerID(r)
	if !ok {
		WriteServiceError(w, service.ErrMissingIdentity)
		return
	}

	blogID, err := pathID(r, "blogId")
	if err != nil {
		WriteError(w, "Неверный идентификатор блога", http.StatusBadRequest)
		return
	}

	postID, err := pathID(r, "postId")
	if err != nil {
		WriteError(w, "Неверный идентификатор поста", http.StatusBadRequest)
		return
	}

	post, err := h.BlogService.GetPost(r.Context(), userID, blogID, postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := viewerID(r)
	if !ok {
		WriteServiceError(w, service.ErrMissingIdentity)
		return
	}

	blogID, err := pathID(r, "blogId")
	if err != nil {
		WriteError(w, "Неверный идентификатор блога", http.StatusBadRequest)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заголовок и содержимое поста обязательны", http.StatusBadRequest)
		return
	}

	post, err := h.BlogService.CreatePost(r.Context(), userID, blogID, repository.CreatePostRequest{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		IsPaid:   req.IsPaid,
	})
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Пост успешно создан",
		"postId":  post.ID,
	}, http.StatusCreated)
}
