package category

import (
	"context"
	"sync"
)

var _ slugger = &sluggerMock{}

type sluggerMock struct {
	UniqueFunc func(ctx context.Context, source string) (string, error)

	calls struct {
		Unique []struct {
			Ctx    context.Context
			Source string
		}
	}
	lockUnique sync.RWMutex
}

func (mock *sluggerMock) Unique(ctx context.Context, source string) (string, error) {
	if mock.UniqueFunc == nil {
		panic("sluggerMock.UniqueFunc: method is nil but slugger.Unique was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Source string
	}{
		Ctx:    ctx,
		Source: source,
	}
	mock.lockUnique.Lock()
	mock.calls.Unique = append(mock.calls.Unique, callInfo)
	mock.lockUnique.Unlock()
	return mock.UniqueFunc(ctx, source)
}

func (mock *sluggerMock) UniqueCalls() []struct {
	Ctx    context.Context
	Source string
} {
	mock.lockUnique.RLock()
	calls := mock.calls.Unique
	mock.lockUnique.RUnlock()
	return calls
}
