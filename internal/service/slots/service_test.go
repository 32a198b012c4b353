package slots

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	availabilityRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/availability"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type dayKey struct {
	cafeID int64
	date   string
}

// fakeAvailabilityRepo воспроизводит уникальный индекс (cafe_id, slot_date, slot_time):
// батч либо вставляется целиком, либо отклоняется целиком при конфликте
type fakeAvailabilityRepo struct {
	mu     sync.Mutex
	nextID int64
	days   map[dayKey][]*domain.SlotAvailability

	readErr   error
	insertErr error

	// emptyReads заставляет первые N чтений вернуть пустой результат,
	// имитируя гонку "прочитал пусто, а конкурент уже вставил"
	emptyReads int
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{
		nextID: 1,
		days:   make(map[dayKey][]*domain.SlotAvailability),
	}
}

func (f *fakeAvailabilityRepo) GetByID(ctx context.Context, id int64) (*domain.SlotAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, slots := range f.days {
		for _, slot := range slots {
			if slot.ID == id {
				copied := *slot
				return &copied, nil
			}
		}
	}
	return nil, availabilityRepo.ErrSlotNotFound
}

func (f *fakeAvailabilityRepo) GetByCafeAndDate(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	if f.emptyReads > 0 {
		f.emptyReads--
		return nil, nil
	}

	slots := f.days[dayKey{cafeID, date.Format(domain.DateFormat)}]
	result := make([]*domain.SlotAvailability, len(slots))
	for i, slot := range slots {
		copied := *slot
		result[i] = &copied
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SlotTime.IsBefore(result[j].SlotTime)
	})
	return result, nil
}

func (f *fakeAvailabilityRepo) BatchInsert(ctx context.Context, slots []*domain.SlotAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if len(slots) == 0 {
		return nil
	}

	key := dayKey{slots[0].CafeID, slots[0].SlotDate.Format(domain.DateFormat)}
	if len(f.days[key]) > 0 {
		return availabilityRepo.ErrDuplicateSlot
	}

	for _, slot := range slots {
		copied := *slot
		copied.ID = f.nextID
		f.nextID++
		f.days[key] = append(f.days[key], &copied)
	}
	return nil
}

func (f *fakeAvailabilityRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, slots := range f.days {
		for _, slot := range slots {
			if slot.ID == id {
				slot.IsBlocked = blocked
				return nil
			}
		}
	}
	return availabilityRepo.ErrSlotNotFound
}

type fakeTemplateRepo struct {
	templates []*domain.SlotTemplate
	err       error
}

func (f *fakeTemplateRepo) ListByCafe(ctx context.Context, cafeID int64, onlyActive bool) ([]*domain.SlotTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.SlotTemplate
	for _, tmpl := range f.templates {
		if tmpl.CafeID != cafeID {
			continue
		}
		if onlyActive && !tmpl.IsActive {
			continue
		}
		result = append(result, tmpl)
	}
	return result, nil
}

func tmpl(id, cafeID int64, slotTime types.TimeString, maxOrders int, active bool) *domain.SlotTemplate {
	return &domain.SlotTemplate{
		ID:        id,
		CafeID:    cafeID,
		SlotTime:  slotTime,
		MaxOrders: maxOrders,
		IsActive:  active,
	}
}

func TestService_EnsureAvailability(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("materializes active templates once", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		templates := &fakeTemplateRepo{templates: []*domain.SlotTemplate{
			tmpl(1, 1, "08:00", 10, true),
			tmpl(2, 1, "08:15", 5, true),
			tmpl(3, 1, "08:30", 10, false), // неактивный не материализуется
		}}
		svc := NewService(repo, templates, nopLogger{})

		slots, err := svc.EnsureAvailability(context.Background(), 1, date)
		require.NoError(t, err)
		require.Len(t, slots, 2)

		assert.Equal(t, types.TimeString("08:00"), slots[0].SlotTime)
		assert.Equal(t, 10, slots[0].MaxOrders)
		assert.Equal(t, types.TimeString("08:15"), slots[1].SlotTime)
		assert.Equal(t, 5, slots[1].MaxOrders)
		for _, slot := range slots {
			assert.Equal(t, 0, slot.BookedCount)
			assert.False(t, slot.IsBlocked)
			require.NotNil(t, slot.TemplateID)
		}
	})

	t.Run("repeated call returns existing rows untouched", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		templates := &fakeTemplateRepo{templates: []*domain.SlotTemplate{
			tmpl(1, 1, "08:00", 10, true),
		}}
		svc := NewService(repo, templates, nopLogger{})

		first, err := svc.EnsureAvailability(context.Background(), 1, date)
		require.NoError(t, err)
		require.Len(t, first, 1)

		// Правка шаблона после материализации не влияет на журнал
		templates.templates[0].MaxOrders = 99
		templates.templates[0].IsActive = false

		second, err := svc.EnsureAvailability(context.Background(), 1, date)
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, 10, second[0].MaxOrders)
	})

	t.Run("no templates means empty day", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		svc := NewService(repo, &fakeTemplateRepo{}, nopLogger{})

		slots, err := svc.EnsureAvailability(context.Background(), 1, date)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("insert conflict falls back to reread", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		// Конкурент уже материализовал день
		require.NoError(t, repo.BatchInsert(context.Background(), []*domain.SlotAvailability{
			{CafeID: 1, SlotDate: date, SlotTime: "08:00", MaxOrders: 7},
		}))

		templates := &fakeTemplateRepo{templates: []*domain.SlotTemplate{
			tmpl(1, 1, "08:00", 10, true),
		}}
		svc := NewService(repo, templates, nopLogger{})

		// Имитируем гонку: свое чтение пустое, вставка упирается в конфликт
		repo.emptyReads = 1
		svcSlots, err := svc.EnsureAvailability(context.Background(), 1, date)
		require.NoError(t, err)
		require.Len(t, svcSlots, 1)
		assert.Equal(t, 7, svcSlots[0].MaxOrders)
	})

	t.Run("concurrent materialization yields one row set", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		templates := &fakeTemplateRepo{templates: []*domain.SlotTemplate{
			tmpl(1, 1, "08:00", 10, true),
			tmpl(2, 1, "08:15", 10, true),
		}}
		svc := NewService(repo, templates, nopLogger{})

		const callers = 10
		var wg sync.WaitGroup
		results := make([][]*domain.SlotAvailability, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = svc.EnsureAvailability(context.Background(), 1, date)
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			require.Len(t, results[i], 2, "caller %d", i)
			// Все вызовы видят один и тот же набор строк
			assert.Equal(t, results[0][0].ID, results[i][0].ID)
			assert.Equal(t, results[0][1].ID, results[i][1].ID)
		}
	})

	t.Run("read failure is wrapped", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		repo.readErr = errors.New("connection reset")
		svc := NewService(repo, &fakeTemplateRepo{}, nopLogger{})

		_, err := svc.EnsureAvailability(context.Background(), 1, date)
		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_SetBlocked(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("toggles block without touching booked count", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		require.NoError(t, repo.BatchInsert(context.Background(), []*domain.SlotAvailability{
			{CafeID: 1, SlotDate: date, SlotTime: "08:00", MaxOrders: 10, BookedCount: 4},
		}))
		svc := NewService(repo, &fakeTemplateRepo{}, nopLogger{})

		require.NoError(t, svc.SetBlocked(context.Background(), 1, true))
		slot, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, slot.IsBlocked)
		assert.Equal(t, 4, slot.BookedCount)

		require.NoError(t, svc.SetBlocked(context.Background(), 1, false))
		slot, err = repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.False(t, slot.IsBlocked)
		assert.Equal(t, 4, slot.BookedCount)
	})

	t.Run("unknown slot", func(t *testing.T) {
		svc := NewService(newFakeAvailabilityRepo(), &fakeTemplateRepo{}, nopLogger{})
		require.ErrorIs(t, svc.SetBlocked(context.Background(), 99, true), ErrSlotNotFound)
	})
}
