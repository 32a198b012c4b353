package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	staffKey  contextKey = "staff"
)

// headerUserID заголовок с идентификатором пользователя
// Аутентификация выполняется внешним identity-сервисом на API gateway;
// сюда запрос приходит уже проверенным
const headerUserID = "X-User-ID"

// headerUserRole заголовок с ролью пользователя ("staff" для персонала кафе)
const headerUserRole = "X-User-Role"

// Auth требует наличия X-User-ID и кладет идентификатор и роль в context
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, staffKey, r.Header.Get(headerUserRole) == "staff")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает идентификатор пользователя из context
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsStaffFromContext возвращает true, если запрос выполнен персоналом кафе
func IsStaffFromContext(ctx context.Context) bool {
	staff, ok := ctx.Value(staffKey).(bool)
	return ok && staff
}
