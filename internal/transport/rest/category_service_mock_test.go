package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/category"
)

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	ListFunc       func(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error)
	ListActiveFunc func(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	CreateFunc     func(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	UpdateFunc     func(ctx context.Context, input category.UpdateInput) (*domain.Category, error)
	SetActiveFunc  func(ctx context.Context, id uuid.UUID, active bool) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
			Typ *domain.CategoryType
		}
		ListActive []struct {
			Ctx context.Context
			Typ *domain.CategoryType
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input category.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input category.UpdateInput
		}
		SetActive []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Active bool
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockListActive sync.RWMutex
	lockGet        sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockSetActive  sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *categoryServiceMock) List(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error) {
	if mock.ListFunc == nil {
		panic("categoryServiceMock.ListFunc: method is nil but categoryService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Typ *domain.CategoryType
	}{
		Ctx: ctx,
		Typ: typ,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, typ)
}

func (mock *categoryServiceMock) ListCalls() []struct {
	Ctx context.Context
	Typ *domain.CategoryType
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *categoryServiceMock) ListActive(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error) {
	if mock.ListActiveFunc == nil {
		panic("categoryServiceMock.ListActiveFunc: method is nil but categoryService.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Typ *domain.CategoryType
	}{
		Ctx: ctx,
		Typ: typ,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, typ)
}

func (mock *categoryServiceMock) ListActiveCalls() []struct {
	Ctx context.Context
	Typ *domain.CategoryType
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if mock.GetFunc == nil {
		panic("categoryServiceMock.GetFunc: method is nil but categoryService.Get was just called")
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

func (mock *categoryServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Create(ctx context.Context, input category.CreateInput) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryServiceMock.CreateFunc: method is nil but categoryService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *categoryServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input category.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Update(ctx context.Context, input category.UpdateInput) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryServiceMock.UpdateFunc: method is nil but categoryService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input category.UpdateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *categoryServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input category.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryServiceMock) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if mock.SetActiveFunc == nil {
		panic("categoryServiceMock.SetActiveFunc: method is nil but categoryService.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Active bool
	}{
		Ctx:    ctx,
		ID:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *categoryServiceMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Active bool
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *categoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("categoryServiceMock.DeleteFunc: method is nil but categoryService.Delete was just called")
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

func (mock *categoryServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
