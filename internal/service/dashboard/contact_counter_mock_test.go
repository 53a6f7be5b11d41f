package dashboard

import (
	"context"
	"sync"
)

var _ contactCounter = &contactCounterMock{}

type contactCounterMock struct {
	CountPendingFunc func(ctx context.Context) (int, error)

	calls struct {
		CountPending []struct {
			Ctx context.Context
		}
	}
	lockCountPending sync.RWMutex
}

func (mock *contactCounterMock) CountPending(ctx context.Context) (int, error) {
	if mock.CountPendingFunc == nil {
		panic("contactCounterMock.CountPendingFunc: method is nil but contactCounter.CountPending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountPending.Lock()
	mock.calls.CountPending = append(mock.calls.CountPending, callInfo)
	mock.lockCountPending.Unlock()
	return mock.CountPendingFunc(ctx)
}

func (mock *contactCounterMock) CountPendingCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountPending.RLock()
	calls := mock.calls.CountPending
	mock.lockCountPending.RUnlock()
	return calls
}
