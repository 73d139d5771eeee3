// Package store persists the collection of saved reports.
//
// The collection is small and ordered: every mutation loads it whole from a
// [Backend], changes it, and stores it back whole.
package store

import (
	"context"
	"errors"

	"github.com/navs23/fundinsights"
)

var (
	ErrNotFound      = errors.New("report not found")
	ErrNameExists    = errors.New("a report with that name already exists")
	ErrNothingToSave = errors.New("no data to save")
)

// Backend reads and writes the whole report collection, in order.
type Backend interface {
	Load(ctx context.Context) ([]fundinsights.SavedReport, error)
	Store(ctx context.Context, reports []fundinsights.SavedReport) error
	Close() error
}
