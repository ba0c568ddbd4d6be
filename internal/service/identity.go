package service

import (
	"fmt"
	"strconv"
	"strings"
)

// IdentityPrefix - префикс строкового идентификатора пользователя на границе
// API. Внутри сервиса id всегда целое число, строка "user-<n>" существует
// только в запросах и ответах.
const IdentityPrefix = "user-"

// FormatIdentity переводит внутренний id в строковый вид для ответа клиенту.
func FormatIdentity(userID int64) string {
	return fmt.Sprintf("%s%d", IdentityPrefix, userID)
}

// ResolveIdentity разбирает предъявленный клиентом идентификатор "user-<n>".
// Подпись не проверяется - это осознанно слабое место унаследованной схемы,
// усиленный путь через JWT живёт в middleware.
func ResolveIdentity(presented string) (int64, error) {
	if presented == "" {
		return 0, ErrMissingIdentity
	}

	if !strings.HasPrefix(presented, IdentityPrefix) {
		return 0, ErrMalformedIdentity
	}

	userID, err := strconv.ParseInt(strings.TrimPrefix(presented, IdentityPrefix), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrMalformedIdentity
	}

	return userID, nil
}
