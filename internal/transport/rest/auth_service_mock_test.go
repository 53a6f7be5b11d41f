package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc   func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	SessionFunc func(ctx context.Context) (*domain.Admin, error)

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		Session []struct {
			Ctx context.Context
		}
	}
	lockLogin   sync.RWMutex
	lockSession sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Session(ctx context.Context) (*domain.Admin, error) {
	if mock.SessionFunc == nil {
		panic("authServiceMock.SessionFunc: method is nil but authService.Session was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSession.Lock()
	mock.calls.Session = append(mock.calls.Session, callInfo)
	mock.lockSession.Unlock()
	return mock.SessionFunc(ctx)
}

func (mock *authServiceMock) SessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockSession.RLock()
	calls := mock.calls.Session
	mock.lockSession.RUnlock()
	return calls
}
