package service

import (
	"miblog/internal/models"
)

// CanViewPost решает, открывается ли зрителю полный текст поста.
// Чистая функция над уже загруженным состоянием, ничего не мутирует.
//
// Правила, первая сработавшая побеждает:
//  1. владелец блога видит всё
//  2. бесплатный блог (цена 0) открыт целиком, флаг is_paid не важен
//  3. бесплатный пост открыт всем
//  4. платный пост платного блога - только при активной подписке
func CanViewPost(viewerID int64, blog *models.Blog, post *models.Post, hasActiveSubscription bool) bool {
	if viewerID == blog.OwnerID {
		return true
	}
	if blog.SubscriptionPrice == 0 {
		return true
	}
	if !post.IsPaid {
		return true
	}
	return hasActiveSubscription
}

// FilterVisiblePosts применяет CanViewPost к каждому посту списка.
// Закрытые посты выбрасываются целиком, без заголовка и анонса, чтобы не
// выдавать само существование премиум-постов. Порядок входа сохраняется.
func FilterVisiblePosts(viewerID int64, blog *models.Blog, posts []models.Post, hasActiveSubscription bool) []models.Post {
	visible := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if CanViewPost(viewerID, blog, &post, hasActiveSubscription) {
			visible = append(visible, post)
		}
	}
	return visible
}
