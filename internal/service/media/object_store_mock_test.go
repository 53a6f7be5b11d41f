package media

import (
	"context"
	"io"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	SaveFunc   func(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
	KeyForFunc func(url string) (string, bool)

	calls struct {
		Save []struct {
			Ctx         context.Context
			Key         string
			Data        io.Reader
			ContentType string
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
		KeyFor []struct {
			URL string
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
	lockKeyFor sync.RWMutex
}

func (mock *objectStoreMock) Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if mock.SaveFunc == nil {
		panic("objectStoreMock.SaveFunc: method is nil but objectStore.Save was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		Data        io.Reader
		ContentType string
	}{
		Ctx:         ctx,
		Key:         key,
		Data:        data,
		ContentType: contentType,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, key, data, contentType)
}

func (mock *objectStoreMock) SaveCalls() []struct {
	Ctx         context.Context
	Key         string
	Data        io.Reader
	ContentType string
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *objectStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("objectStoreMock.DeleteFunc: method is nil but objectStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *objectStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *objectStoreMock) KeyFor(url string) (string, bool) {
	if mock.KeyForFunc == nil {
		panic("objectStoreMock.KeyForFunc: method is nil but objectStore.KeyFor was just called")
	}
	callInfo := struct {
		URL string
	}{
		URL: url,
	}
	mock.lockKeyFor.Lock()
	mock.calls.KeyFor = append(mock.calls.KeyFor, callInfo)
	mock.lockKeyFor.Unlock()
	return mock.KeyForFunc(url)
}

func (mock *objectStoreMock) KeyForCalls() []struct {
	URL string
} {
	mock.lockKeyFor.RLock()
	calls := mock.calls.KeyFor
	mock.lockKeyFor.RUnlock()
	return calls
}
