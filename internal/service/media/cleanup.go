package media

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/tourdesk-backend/internal/adapter/storage"
)

// CleanupStatus is the outcome of a best-effort image delete.
type CleanupStatus string

const (
	CleanupDeleted CleanupStatus = "deleted"
	CleanupSkipped CleanupStatus = "skipped" // empty or foreign address
	CleanupMissing CleanupStatus = "missing" // already gone
	CleanupFailed  CleanupStatus = "failed"
)

// CleanupResult reports what happened to one address.
type CleanupResult struct {
	Address string
	Status  CleanupStatus
	Err     error
}

// OK reports whether the image no longer exists in storage, or was never ours.
func (r CleanupResult) OK() bool { return r.Status != CleanupFailed }

// DeleteByAddress removes the image behind a public address. It never fails
// the caller: storage errors are logged and reported in the result.
func (m *Manager) DeleteByAddress(ctx context.Context, address string) CleanupResult {
	res := CleanupResult{Address: address}

	if address == "" {
		res.Status = CleanupSkipped
		return res
	}

	key, ok := m.store.KeyFor(address)
	if !ok {
		m.log.DebugContext(ctx, "image address not managed", slog.String("address", address))
		res.Status = CleanupSkipped
		return res
	}

	err := m.store.Delete(ctx, key)
	switch {
	case err == nil:
		res.Status = CleanupDeleted
	case errors.Is(err, storage.ErrObjectNotFound):
		res.Status = CleanupMissing
	default:
		m.log.WarnContext(ctx, "image cleanup failed",
			slog.String("address", address),
			slog.String("error", err.Error()),
		)
		res.Status = CleanupFailed
		res.Err = err
	}

	return res
}
