package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

var _ tourCounter = &tourCounterMock{}

type tourCounterMock struct {
	CountFunc func(ctx context.Context) (domain.TourCounts, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
	}
	lockCount sync.RWMutex
}

func (mock *tourCounterMock) Count(ctx context.Context) (domain.TourCounts, error) {
	if mock.CountFunc == nil {
		panic("tourCounterMock.CountFunc: method is nil but tourCounter.Count was just called")
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

func (mock *tourCounterMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
