package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

var _ adminRepo = &adminRepoMock{}

type adminRepoMock struct {
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.Admin, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	UpsertFunc         func(ctx context.Context, email string, passwordHash string) (*domain.Admin, error)
	TouchLastLoginFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Upsert []struct {
			Ctx          context.Context
			Email        string
			PasswordHash string
		}
		TouchLastLogin []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByEmail     sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpsert         sync.RWMutex
	lockTouchLastLogin sync.RWMutex
}

func (mock *adminRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if mock.GetByEmailFunc == nil {
		panic("adminRepoMock.GetByEmailFunc: method is nil but adminRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *adminRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *adminRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	if mock.GetByIDFunc == nil {
		panic("adminRepoMock.GetByIDFunc: method is nil but adminRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *adminRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *adminRepoMock) Upsert(ctx context.Context, email string, passwordHash string) (*domain.Admin, error) {
	if mock.UpsertFunc == nil {
		panic("adminRepoMock.UpsertFunc: method is nil but adminRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Email        string
		PasswordHash string
	}{
		Ctx:          ctx,
		Email:        email,
		PasswordHash: passwordHash,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, email, passwordHash)
}

func (mock *adminRepoMock) UpsertCalls() []struct {
	Ctx          context.Context
	Email        string
	PasswordHash string
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *adminRepoMock) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	if mock.TouchLastLoginFunc == nil {
		panic("adminRepoMock.TouchLastLoginFunc: method is nil but adminRepo.TouchLastLogin was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockTouchLastLogin.Lock()
	mock.calls.TouchLastLogin = append(mock.calls.TouchLastLogin, callInfo)
	mock.lockTouchLastLogin.Unlock()
	return mock.TouchLastLoginFunc(ctx, id)
}

func (mock *adminRepoMock) TouchLastLoginCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockTouchLastLogin.RLock()
	calls := mock.calls.TouchLastLogin
	mock.lockTouchLastLogin.RUnlock()
	return calls
}
