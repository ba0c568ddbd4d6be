package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"miblog/internal/models"
	"miblog/internal/repository"
	"miblog/internal/service"
)

func TestCreatePostHandler_Success(t *testing.T) {
	mockBlogService := new(MockBlogService)
	handler := createTestHandler()
	handler.BlogService = mockBlogService

	mockBlogService.On("CreatePost", mock.Anything, int64(1), int64(10), repository.CreatePostRequest{
		Title:   "paid1",
		Content: "секретное содержимое",
		IsPaid:  true,
	}).Return(&models.Post{ID: 100, BlogID: 10, Title: "paid1", IsPaid: true}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "paid1",
		"content": "секретное содержимое",
		"isPaid":  true,
	})
	req := authedRequest(http.MethodPost, "/api/blogs/10/posts", bytes.NewBuffer(body), 1,
		map[string]string{"blogId": "10"})
	rr := httptest.NewRecorder()

	handler.CreatePost(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var response map[string]interface{}
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(100), response["postId"])
}

func TestCreatePostHandler_NotOwner(t *testing.T) {
	mockBlogService := new(MockBlogService)
	handler := createTestHandler()
	handler.BlogService = mockBlogService

	mockBlogService.On("CreatePost", mock.Anything, int64(2), int64(10), mock.Anything).
		Return(nil, service.ErrForbidden)

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "t",
		"content": "c",
	})
	req := authedRequest(http.MethodPost, "/api/blogs/10/posts", bytes.NewBuffer(body), 2,
		map[string]string{"blogId": "10"})
	rr := httptest.NewRecorder()

	handler.CreatePost(rr, req)

	assertJSONError(t, rr, http.StatusForbidden, "нет прав")
}

func TestGetPostHandler_SubscriptionRequired(t *testing.T) {
	mockBlogService := new(MockBlogService)
	handler := createTestHandler()
	handler.BlogService = mockBlogService

	mockBlogService.On("GetPost", mock.Anything, int64(2), int64(10), int64(100)).
		Return(nil, service.ErrSubscriptionRequired)

	req := authedRequest(http.MethodGet, "/api/blogs/10/posts/100", nil, 2,
		map[string]string{"blogId": "10", "postId": "100"})
	rr := httptest.NewRecorder()

	handler.GetPost(rr, req)

	assertJSONError(t, rr, http.StatusForbidden, "только по подписке")
}

func TestGetPostHandler_Success(t *testing.T) {
	mockBlogService := new(MockBlogService)
	handler := createTestHandler()
	handler.BlogService = mockBlogService

	mockBlogService.On("GetPost", mock.Anything, int64(2), int64(10), int64(100)).
		Return(&models.Post{ID: 100, BlogID: 10, Title: "free1", Content: "текст"}, nil)

	req := authedRequest(http.MethodGet, "/api/blogs/10/posts/100", nil, 2,
		map[string]string{"blogId": "10", "postId": "100"})
	rr := httptest.NewRecorder()

	handler.GetPost(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var post models.Post
	err := json.Unmarshal(rr.Body.Bytes(), &post)
	assert.NoError(t, err)
	assert.Equal(t, "free1", post.Title)
	assert.Equal(t, "текст", post.Content)
}

func TestGetPostsHandler_ReturnsFilteredList(t *testing.T) {
	mockBlogService := new(MockBlogService)
	handler := createTestHandler()
	handler.BlogService = mockBlogService

	// сервис уже отфильтровал закрытые посты, хендлер отдаёт как есть
	mockBlogService.On("ListPosts", mock.Anything, int64(2), int64(10)).
		Return([]models.Post{
			{ID: 100, BlogID: 10, Title: "free1", IsPaid: false},
		}, nil)

	req := authedRequest(http.MethodGet, "/api/blogs/10/posts", nil, 2,
		map[string]string{"blogId": "10"})
	rr := httptest.NewRecorder()

	handler.GetPosts(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var posts []models.Post
	err := json.Unmarshal(rr.Body.Bytes(), &posts)
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "free1", posts[0].Title)
}

func TestGetPostsHandler_BadBlogID(t *testing.T) {
	mockBlogService := new(MockBlogService)
	handler := createTestHandler()
	handler.BlogService = mockBlogService

	req := authedRequest(http.MethodGet, "/api/blogs/abc/posts", nil, 2,
		map[string]string{"blogId": "abc"})
	rr := httptest.NewRecorder()

	handler.GetPosts(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockBlogService.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything, mock.Anything)
}
