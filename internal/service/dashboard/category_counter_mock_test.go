package dashboard

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

var _ categoryCounter = &categoryCounterMock{}

type categoryCounterMock struct {
	CountByTypeFunc func(ctx context.Context) (map[domain.CategoryType]int, error)

	calls struct {
		CountByType []struct {
			Ctx context.Context
		}
	}
	lockCountByType sync.RWMutex
}

func (mock *categoryCounterMock) CountByType(ctx context.Context) (map[domain.CategoryType]int, error) {
	if mock.CountByTypeFunc == nil {
		panic("categoryCounterMock.CountByTypeFunc: method is nil but categoryCounter.CountByType was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountByType.Lock()
	mock.calls.CountByType = append(mock.calls.CountByType, callInfo)
	mock.lockCountByType.Unlock()
	return mock.CountByTypeFunc(ctx)
}

func (mock *categoryCounterMock) CountByTypeCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByType.RLock()
	calls := mock.calls.CountByType
	mock.lockCountByType.RUnlock()
	return calls
}
