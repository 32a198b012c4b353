package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantUserID int64
		wantStaff  bool
	}{
		{name: "valid user", userID: "42", wantStatus: http.StatusOK, wantUserID: 42},
		{name: "staff role", userID: "42", role: "staff", wantStatus: http.StatusOK, wantUserID: 42, wantStaff: true},
		{name: "unknown role is not staff", userID: "42", role: "manager", wantStatus: http.StatusOK, wantUserID: 42},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "non-numeric id", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "zero id", userID: "0", wantStatus: http.StatusUnauthorized},
		{name: "negative id", userID: "-5", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var gotStaff bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := UserIDFromContext(r.Context())
				require.True(t, ok)
				gotUserID = userID
				gotStaff = IsStaffFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.role != "" {
				req.Header.Set("X-User-Role", tt.role)
			}

			rec := httptest.NewRecorder()
			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUserID, gotUserID)
				assert.Equal(t, tt.wantStaff, gotStaff)
			}
		})
	}
}
