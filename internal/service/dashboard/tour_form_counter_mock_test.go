package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

var _ tourFormCounter = &tourFormCounterMock{}

type tourFormCounterMock struct {
	CountFunc func(ctx context.Context) (domain.TourEnquiryCounts, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *tourFormCounterMock) Count(ctx context.Context) (domain.TourEnquiryCounts, error) {
	if mock.CountFunc == nil {
		panic("tourFormCounterMock.CountFunc: method is nil but tourFormCounter.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *tourFormCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
