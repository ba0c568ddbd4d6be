package handlers

import (
	"net/http"
	"time"

	"miblog/internal/service"
)

// SubscribedBlogResponse - элемент списка "мои подписки"
type SubscribedBlogResponse struct {
	BlogResponse
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
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

	sub, err := h.SubscriptionService.Subscribe(r.Context(), userID, blogID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message":      "Подписка оформлена",
		"blogId":       sub.BlogID,
		"status":       sub.Status,
		"subscribedAt": sub.SubscribedAt,
	}, http.StatusOK)
}

func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
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

	if err := h.SubscriptionService.Cancel(r.Context(), userID, blogID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message": "Подписка отменена",
		"blogId":  blogID,
	}, http.StatusOK)
}

func (h *Handlers) CheckSubscription(w http.ResponseWriter, r *http.Request) {
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

	subscribed, err := h.SubscriptionService.IsSubscribed(r.Context(), userID, blogID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"isSubscribed": subscribed}, http.StatusOK)
}

func (h *Handlers) GetMySubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := viewerID(r)
	if !ok {
		WriteServiceError(w, service.ErrMissingIdentity)
		return
	}

	subscribed, err := h.SubscriptionService.ListActive(r.Context(), userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	response := make([]SubscribedBlogResponse, 0, len(subscribed))
	for _, item := range subscribed {
		response = append(response, SubscribedBlogResponse{
			BlogResponse: toBlogResponse(item.Blog),
			Status:       item.Status,
			SubscribedAt: item.SubscribedAt,
		})
	}

	WriteSuccess(w, response, http.StatusOK)
}
