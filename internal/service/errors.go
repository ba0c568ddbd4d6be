package service

import "errors"

// Ошибки бизнес-уровня. Хендлеры сопоставляют их с HTTP-статусами,
// сообщение уходит клиенту как есть.
var (
	ErrInvalidInput         = errors.New("неверные данные запроса")
	ErrDuplicateUsername    = errors.New("имя пользователя уже занято")
	ErrInvalidCredentials   = errors.New("неверное имя пользователя или пароль")
	ErrMissingIdentity      = errors.New("идентификатор пользователя не передан")
	ErrMalformedIdentity    = errors.New("неверный формат идентификатора пользователя")
	ErrBlogNotFound         = errors.New("блог не найден")
	ErrPostNotFound         = errors.New("пост не найден")
	ErrSubscriptionNotFound = errors.New("активная подписка не найдена")
	ErrForbidden            = errors.New("нет прав на это действие")
	ErrSubscriptionRequired = errors.New("пост доступен только по подписке на этот блог")
	ErrSelfSubscription     = errors.New("нельзя подписаться на собственный блог")
)
