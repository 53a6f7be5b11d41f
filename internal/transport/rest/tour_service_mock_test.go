package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/tour"
)

var _ tourService = &tourServiceMock{}

type tourServiceMock struct {
	ListFunc          func(ctx context.Context) ([]domain.Tour, error)
	ListPublishedFunc func(ctx context.Context, categoryID string, featuredOnly bool) ([]domain.Tour, error)
	GetFunc           func(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	GetPublishedFunc  func(ctx context.Context, slug string) (*domain.Tour, error)
	CreateFunc        func(ctx context.Context, form tour.Form) (*domain.Tour, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, form tour.Form) (*domain.Tour, error)
	SetStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.TourStatus) error
	SetFeaturedFunc   func(ctx context.Context, id uuid.UUID, featured bool) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		ListPublished []struct {
			Ctx          context.Context
			CategoryID   string
			FeaturedOnly bool
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetPublished []struct {
			Ctx  context.Context
			Slug string
		}
		Create []struct {
			Ctx  context.Context
			Form tour.Form
		}
		Update []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Form tour.Form
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
	lockList          sync.RWMutex
	lockListPublished sync.RWMutex
	lockGet           sync.RWMutex
	lockGetPublished  sync.RWMutex
	lockCreate        sync.RWMutex
	lockUpdate        sync.RWMutex
	lockSetStatus     sync.RWMutex
	lockSetFeatured   sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *tourServiceMock) List(ctx context.Context) ([]domain.Tour, error) {
	if mock.ListFunc == nil {
		panic("tourServiceMock.ListFunc: method is nil but tourService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *tourServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tourServiceMock) ListPublished(ctx context.Context, categoryID string, featuredOnly bool) ([]domain.Tour, error) {
	if mock.ListPublishedFunc == nil {
		panic("tourServiceMock.ListPublishedFunc: method is nil but tourService.ListPublished was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CategoryID   string
		FeaturedOnly bool
	}{
		Ctx:          ctx,
		CategoryID:   categoryID,
		FeaturedOnly: featuredOnly,
	}
	mock.lockListPublished.Lock()
	mock.calls.ListPublished = append(mock.calls.ListPublished, callInfo)
	mock.lockListPublished.Unlock()
	return mock.ListPublishedFunc(ctx, categoryID, featuredOnly)
}

func (mock *tourServiceMock) ListPublishedCalls() []struct {
	Ctx          context.Context
	CategoryID   string
	FeaturedOnly bool
} {
	mock.lockListPublished.RLock()
	calls := mock.calls.ListPublished
	mock.lockListPublished.RUnlock()
	return calls
}

func (mock *tourServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	if mock.GetFunc == nil {
		panic("tourServiceMock.GetFunc: method is nil but tourService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *tourServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *tourServiceMock) GetPublished(ctx context.Context, slug string) (*domain.Tour, error) {
	if mock.GetPublishedFunc == nil {
		panic("tourServiceMock.GetPublishedFunc: method is nil but tourService.GetPublished was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockGetPublished.Lock()
	mock.calls.GetPublished = append(mock.calls.GetPublished, callInfo)
	mock.lockGetPublished.Unlock()
	return mock.GetPublishedFunc(ctx, slug)
}

func (mock *tourServiceMock) GetPublishedCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetPublished.RLock()
	calls := mock.calls.GetPublished
	mock.lockGetPublished.RUnlock()
	return calls
}

func (mock *tourServiceMock) Create(ctx context.Context, form tour.Form) (*domain.Tour, error) {
	if mock.CreateFunc == nil {
		panic("tourServiceMock.CreateFunc: method is nil but tourService.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Form tour.Form
	}{
		Ctx:  ctx,
		Form: form,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, form)
}

func (mock *tourServiceMock) CreateCalls() []struct {
	Ctx  context.Context
	Form tour.Form
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tourServiceMock) Update(ctx context.Context, id uuid.UUID, form tour.Form) (*domain.Tour, error) {
	if mock.UpdateFunc == nil {
		panic("tourServiceMock.UpdateFunc: method is nil but tourService.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Form tour.Form
	}{
		Ctx:  ctx,
		ID:   id,
		Form: form,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, form)
}

func (mock *tourServiceMock) UpdateCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Form tour.Form
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *tourServiceMock) SetStatus(ctx context.Context, id uuid.UUID, status domain.TourStatus) error {
	if mock.SetStatusFunc == nil {
		panic("tourServiceMock.SetStatusFunc: method is nil but tourService.SetStatus was just called")
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

func (mock *tourServiceMock) SetStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.TourStatus
} {
	mock.lockSetStatus.RLock()
	calls := mock.calls.SetStatus
	mock.lockSetStatus.RUnlock()
	return calls
}

func (mock *tourServiceMock) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	if mock.SetFeaturedFunc == nil {
		panic("tourServiceMock.SetFeaturedFunc: method is nil but tourService.SetFeatured was just called")
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

func (mock *tourServiceMock) SetFeaturedCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Featured bool
} {
	mock.lockSetFeatured.RLock()
	calls := mock.calls.SetFeatured
	mock.lockSetFeatured.RUnlock()
	return calls
}

func (mock *tourServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("tourServiceMock.DeleteFunc: method is nil but tourService.Delete was just called")
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

func (mock *tourServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
