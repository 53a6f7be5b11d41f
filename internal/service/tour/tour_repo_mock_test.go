package tour

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

var _ tourRepo = &tourRepoMock{}

type tourRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	GetBySlugFunc     func(ctx context.Context, slug string) (*domain.Tour, error)
	ListFunc          func(ctx context.Context, f domain.TourFilter) ([]domain.Tour, error)
	CountFeaturedFunc func(ctx context.Context, exclude uuid.UUID) (int, error)
	CreateFunc        func(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, t *domain.Tour) error
	SetStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.TourStatus) error
	SetFeaturedFunc   func(ctx context.Context, id uuid.UUID, featured bool) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		List []struct {
			Ctx context.Context
			F   domain.TourFilter
		}
		CountFeatured []struct {
			Ctx     context.Context
			Exclude uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Tour
		}
		Update []struct {
			Ctx context.Context
			ID  uuid.UUID
			T   *domain.Tour
		}
		SetStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.TourStatus
		}
		SetFeatured []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Featured bool
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID       sync.RWMutex
	lockGetBySlug     sync.RWMutex
	lockList          sync.RWMutex
	lockCountFeatured sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockSetStatus     sync.RWMutex
	lockSetFeatured   sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *tourRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	if mock.GetByIDFunc == nil {
		panic("tourRepoMock.GetByIDFunc: method is nil but tourRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *tourRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tourRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	if mock.GetBySlugFunc == nil {
		panic("tourRepoMock.GetBySlugFunc: method is nil but tourRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *tourRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *tourRepoMock) List(ctx context.Context, f domain.TourFilter) ([]domain.Tour, error) {
	if mock.ListFunc == nil {
		panic("tourRepoMock.ListFunc: method is nil but tourRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TourFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *tourRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.TourFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tourRepoMock) CountFeatured(ctx context.Context, exclude uuid.UUID) (int, error) {
	if mock.CountFeaturedFunc == nil {
		panic("tourRepoMock.CountFeaturedFunc: method is nil but tourRepo.CountFeatured was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Exclude uuid.UUID
	}{
		Ctx:     ctx,
		Exclude: exclude,
	}
	mock.lockCountFeatured.Lock()
	mock.calls.CountFeatured = append(mock.calls.CountFeatured, callInfo)
	mock.lockCountFeatured.Unlock()
	return mock.CountFeaturedFunc(ctx, exclude)
}

func (mock *tourRepoMock) CountFeaturedCalls() []struct {
	Ctx     context.Context
	Exclude uuid.UUID
} {
	mock.lockCountFeatured.RLock()
	calls := mock.calls.CountFeatured
	mock.lockCountFeatured.RUnlock()
	return calls
}

func (mock *tourRepoMock) Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	if mock.CreateFunc == nil {
		panic("tourRepoMock.CreateFunc: method is nil but tourRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tour
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tourRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Tour
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tourRepoMock) Update(ctx context.Context, id uuid.UUID, t *domain.Tour) error {
	if mock.UpdateFunc == nil {
		panic("tourRepoMock.UpdateFunc: method is nil but tourRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		T   *domain.Tour
	}{
		Ctx: ctx,
		ID:  id,
		T:   t,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, t)
}

func (mock *tourRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	T   *domain.Tour
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *tourRepoMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.TourStatus) error {
	if mock.SetStatusFunc == nil {
		panic("tourRepoMock.SetStatusFunc: method is nil but tourRepo.SetStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.TourStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Status: status,
	}
	mock.lockSetStatus.Lock()
	mock.calls.SetStatus = append(mock.calls.SetStatus, callInfo)
	mock.lockSetStatus.Unlock()
	return mock.SetStatusFunc(ctx, id, status)
}

func (mock *tourRepoMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.TourStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *tourRepoMock) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	if mock.SetFeaturedFunc == nil {
		panic("tourRepoMock.SetFeaturedFunc: method is nil but tourRepo.SetFeatured was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Featured bool
	}{
		Ctx:      ctx,
		ID:       id,
		Featured: featured,
	}
	mock.lockSetFeatured.Lock()
	mock.calls.SetFeatured = append(mock.calls.SetFeatured, callInfo)
	mock.lockSetFeatured.Unlock()
	return mock.SetFeaturedFunc(ctx, id, featured)
}

func (mock *tourRepoMock) SetFeaturedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Featured bool
} {
	mock.lockSetFeatured.RLock()
	calls := mock.calls.SetFeatured
	mock.lockSetFeatured.RUnlock()
	return calls
}

func (mock *tourRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tourRepoMock.DeleteFunc: method is nil but tourRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *tourRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
