package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourdesk-backend/internal/service/media"
)

var _ mediaService = &mediaServiceMock{}

type mediaServiceMock struct {
	UploadFunc          func(ctx context.Context, in media.Upload) (string, error)
	DeleteByAddressFunc func(ctx context.Context, address string) media.CleanupResult

	calls struct {
		Upload []struct {
			Ctx context.Context
			In  media.Upload
		}
		DeleteByAddress []struct {
			Ctx     context.Context
			Address string
		}
	}
	lockUpload          sync.RWMutex
	lockDeleteByAddress sync.RWMutex
}

func (mock *mediaServiceMock) Upload(ctx context.Context, in media.Upload) (string, error) {
	if mock.UploadFunc == nil {
		panic("mediaServiceMock.UploadFunc: method is nil but mediaService.Upload was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  media.Upload
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, in)
}

func (mock *mediaServiceMock) UploadCalls() []struct {
	Ctx context.Context
	In  media.Upload
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *mediaServiceMock) DeleteByAddress(ctx context.Context, address string) media.CleanupResult {
	if mock.DeleteByAddressFunc == nil {
		panic("mediaServiceMock.DeleteByAddressFunc: method is nil but mediaService.DeleteByAddress was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Address string
	}{
		Ctx:     ctx,
		Address: address,
	}
	mock.lockDeleteByAddress.Lock()
	mock.calls.DeleteByAddress = append(mock.calls.DeleteByAddress, callInfo)
	mock.lockDeleteByAddress.Unlock()
	return mock.DeleteByAddressFunc(ctx, address)
}

func (mock *mediaServiceMock) DeleteByAddressCalls() []struct {
	Ctx     context.Context
	Address string
} {
	mock.lockDeleteByAddress.RLock()
	calls := mock.calls.DeleteByAddress
	mock.lockDeleteByAddress.RUnlock()
	return calls
}
