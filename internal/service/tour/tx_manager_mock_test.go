package tour

import (
	"context"
	"sync"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunSerializableFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunSerializable []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunSerializable sync.RWMutex
}

func (mock *txManagerMock) RunSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunSerializableFunc == nil {
		panic("txManagerMock.RunSerializableFunc: method is nil but txManager.RunSerializable was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunSerializable.Lock()
	mock.calls.RunSerializable = append(mock.calls.RunSerializable, callInfo)
	mock.lockRunSerializable.Unlock()
	return mock.RunSerializableFunc(ctx, fn)
}

func (mock *txManagerMock) RunSerializableCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunSerializable.RLock()
	calls := mock.calls.RunSerializable
	mock.lockRunSerializable.RUnlock()
	return calls
}
