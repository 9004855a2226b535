package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

var ErrUnsupportedMutation = errors.New("operation not supported by this list")

// OrderPolicy decides how a fetched collection is ordered for display.
type OrderPolicy string

const (
	// OrderReverse reverses the server order, for APIs that return oldest
	// first.
	OrderReverse OrderPolicy = "reverse"
	// OrderServer keeps the server order as-is.
	OrderServer OrderPolicy = "server"
)

func ParseOrderPolicy(raw string) (OrderPolicy, error) {
	switch OrderPolicy(raw) {
	case "", OrderReverse:
		return OrderReverse, nil
	case OrderServer:
		return OrderServer, nil
	default:
		return "", fmt.Errorf("unsupported list order %q (want %q or %q)", raw, OrderReverse, OrderServer)
	}
}

// Collection is the remote side of a ResourceList.
type Collection[T domain.Record, P any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload P) (T, error)
	Update(ctx context.Context, id string, payload P) (T, error)
	Delete(ctx context.Context, id string) error
}

type RemoveResult struct {
	// AlreadyGone is set when the server no longer had the record.
	AlreadyGone bool
}

// ResourceList is the local, newest-first mirror of one remote collection.
// Mutations go to the server first; the local list only changes once the
// server has answered, and then takes the server's record shape verbatim.
type ResourceList[T domain.Record, P any] struct {
	source Collection[T, P]
	order  OrderPolicy

	mu    sync.RWMutex
	items []T
}

func NewResourceList[T domain.Record, P any](source Collection[T, P], order OrderPolicy) *ResourceList[T, P] {
	if order == "" {
		order = OrderReverse
	}

	return &ResourceList[T, P]{source: source, order: order}
}

// LoadAll replaces the list with the full remote collection, keeping only
// records accepted by keep when it is non-nil. On failure the previous
// contents are left untouched.
func (l *ResourceList[T, P]) LoadAll(ctx context.Context, keep func(T) bool) error {
	fetched, err := l.source.List(ctx)
	if err != nil {
		return fmt.Errorf("load list: %w", err)
	}

	ordered := slices.Clone(fetched)
	if l.order == OrderReverse {
		slices.Reverse(ordered)
	}

	seen := make(map[string]struct{}, len(ordered))
	items := make([]T, 0, len(ordered))
	for _, item := range ordered {
		id := item.RecordID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if keep != nil && !keep(item) {
			continue
		}
		items = append(items, item)
	}

	l.mu.Lock()
	l.items = items
	l.mu.Unlock()

	return nil
}

func (l *ResourceList[T, P]) CreateAndPrepend(ctx context.Context, payload P) (T, error) {
	created, err := l.source.Create(ctx, payload)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("create record: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = slices.DeleteFunc(l.items, func(item T) bool { return item.RecordID() == created.RecordID() })
	l.items = slices.Insert(l.items, 0, created)

	return created, nil
}

func (l *ResourceList[T, P]) UpdateInPlace(ctx context.Context, id string, payload P) (T, error) {
	updated, err := l.source.Update(ctx, id, payload)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("update record %s: %w", id, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(id); idx >= 0 {
		l.items[idx] = updated
	}

	return updated, nil
}

// RemoveByID deletes the record remotely and locally. A not-found answer from
// the server counts as success.
func (l *ResourceList[T, P]) RemoveByID(ctx context.Context, id string) (RemoveResult, error) {
	var result RemoveResult
	if err := l.source.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return RemoveResult{}, fmt.Errorf("delete record %s: %w", id, err)
		}
		result.AlreadyGone = true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(id); idx >= 0 {
		l.items = slices.Delete(l.items, idx, idx+1)
	}

	return result, nil
}

// Replace swaps in a record the caller obtained through another endpoint,
// such as a partial update.
func (l *ResourceList[T, P]) Replace(record T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(record.RecordID())
	if idx < 0 {
		return false
	}
	l.items[idx] = record
	return true
}

func (l *ResourceList[T, P]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.items)
}

func (l *ResourceList[T, P]) Get(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if idx := l.indexOf(id); idx >= 0 {
		return l.items[idx], true
	}

	var zero T
	return zero, false
}

func (l *ResourceList[T, P]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}

func (l *ResourceList[T, P]) indexOf(id string) int {
	return slices.IndexFunc(l.items, func(item T) bool { return item.RecordID() == id })
}
