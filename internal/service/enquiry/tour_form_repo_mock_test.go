package enquiry

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

var _ tourFormRepo = &tourFormRepoMock{}

type tourFormRepoMock struct {
	CreateFunc       func(ctx context.Context, e *domain.TourEnquiry) (*domain.TourEnquiry, error)
	ListFunc         func(ctx context.Context, status *domain.TourEnquiryStatus) ([]domain.TourEnquiry, error)
	SetFollowUpFunc  func(ctx context.Context, id uuid.UUID, done bool, status domain.TourEnquiryStatus) error
	SetCompletedFunc func(ctx context.Context, id uuid.UUID, completed bool, status domain.TourEnquiryStatus) error

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.TourEnquiry
		}
		List []struct {
			Ctx    context.Context
			Status *domain.TourEnquiryStatus
		}
		SetFollowUp []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Done   bool
			Status domain.TourEnquiryStatus
		}
		SetCompleted []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Completed bool
			Status    domain.TourEnquiryStatus
		}
	}
	lockCreate       sync.RWMutex
	lockList         sync.RWMutex
	lockSetFollowUp  sync.RWMutex
	lockSetCompleted sync.RWMutex
}

func (mock *tourFormRepoMock) Create(ctx context.Context, e *domain.TourEnquiry) (*domain.TourEnquiry, error) {
	if mock.CreateFunc == nil {
		panic("tourFormRepoMock.CreateFunc: method is nil but tourFormRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.TourEnquiry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *tourFormRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.TourEnquiry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tourFormRepoMock) List(ctx context.Context, status *domain.TourEnquiryStatus) ([]domain.TourEnquiry, error) {
	if mock.ListFunc == nil {
		panic("tourFormRepoMock.ListFunc: method is nil but tourFormRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status *domain.TourEnquiryStatus
	}{
		Ctx:    ctx,
		Status: status,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status)
}

func (mock *tourFormRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Status *domain.TourEnquiryStatus
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *tourFormRepoMock) SetFollowUp(ctx context.Context, id uuid.UUID, done bool, status domain.TourEnquiryStatus) error {
	if mock.SetFollowUpFunc == nil {
		panic("tourFormRepoMock.SetFollowUpFunc: method is nil but tourFormRepo.SetFollowUp was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Done   bool
		Status domain.TourEnquiryStatus
	}{
		Ctx:    ctx,
		ID:     id,
		Done:   done,
		Status: status,
	}
	mock.lockSetFollowUp.Lock()
	mock.calls.SetFollowUp = append(mock.calls.SetFollowUp, callInfo)
	mock.lockSetFollowUp.Unlock()
	return mock.SetFollowUpFunc(ctx, id, done, status)
}

func (mock *tourFormRepoMock) SetFollowUpCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Done   bool
	Status domain.TourEnquiryStatus
} {
	mock.lockSetFollowUp.RLock()
	calls := mock.calls.SetFollowUp
	mock.lockSetFollowUp.RUnlock()
	return calls
}

func (mock *tourFormRepoMock) SetCompleted(ctx context.Context, id uuid.UUID, completed bool, status domain.TourEnquiryStatus) error {
	if mock.SetCompletedFunc == nil {
		panic("tourFormRepoMock.SetCompletedFunc: method is nil but tourFormRepo.SetCompleted was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Completed bool
		Status    domain.TourEnquiryStatus
	}{
		Ctx:       ctx,
		ID:        id,
		Completed: completed,
		Status:    status,
	}
	mock.lockSetCompleted.Lock()
	mock.calls.SetCompleted = append(mock.calls.SetCompleted, callInfo)
	mock.lockSetCompleted.Unlock()
	return mock.SetCompletedFunc(ctx, id, completed, status)
}

func (mock *tourFormRepoMock) SetCompletedCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Completed bool
	Status    domain.TourEnquiryStatus
} {
	mock.lockSetCompleted.RLock()
	calls := mock.calls.SetCompleted
	mock.lockSetCompleted.RUnlock()
	return calls
}
