package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/tapcafe/TapCafe-SlotService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(uc *fakeUseCase) *mux.Router {
	handler := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/cafes/{cafeId}/available-slots", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_Handle(t *testing.T) {
	t.Run("returns slots", func(t *testing.T) {
		date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		uc := &fakeUseCase{resp: &getAvailableSlots.Response{
			CafeID: 7,
			Date:   date,
			Slots: []getAvailableSlots.SlotView{
				{ID: 1, SlotTime: "10:00", MaxOrders: 10, BookedCount: 3},
				{ID: 2, SlotTime: "10:15", MaxOrders: 10, BookedCount: 10, IsFull: true},
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cafes/7/available-slots?date=2025-06-01", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(7), uc.gotReq.CafeID)
		assert.Equal(t, date, uc.gotReq.Date)

		var resp AvailableSlotsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2025-06-01", resp.Date)
		require.Len(t, resp.Slots, 2)
		assert.Equal(t, "10:00", resp.Slots[0].SlotTime)
		assert.True(t, resp.Slots[1].IsFull)
	})

	t.Run("missing date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cafes/7/available-slots", nil)
		rec := httptest.NewRecorder()
		newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cafes/7/available-slots?date=01.06.2025", nil)
		rec := httptest.NewRecorder()
		newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-numeric cafe id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cafes/abc/available-slots?date=2025-06-01", nil)
		rec := httptest.NewRecorder()
		newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("usecase failure", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("connection reset")}
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cafes/7/available-slots?date=2025-06-01", nil)
		rec := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
