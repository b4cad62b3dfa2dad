// Package listing drives the questionnaire tables: loading records from the
// persistence collaborator, local search, fixed-size pagination and the
// two-phase delete flow. One Controller instance backs one table.
package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrRemovalDeclined is returned by Remove when the user answers the
	// confirmation prompt negatively. Nothing was deleted.
	ErrRemovalDeclined = errors.New("listing: removal declined")

	errNilStore = errors.New("listing: controller requires a store")
	errNilID    = errors.New("listing: controller requires an id accessor")
)

// Store is the persistence surface a table needs. Implementations are
// asynchronous HTTP calls; both operations honor the passed context.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function into a Confirmer.
type ConfirmerFunc func(prompt string) (bool, error)

func (fn ConfirmerFunc) Confirm(prompt string) (bool, error) { return fn(prompt) }

// Notifier surfaces transient user feedback. Raw error detail never goes
// through it; that belongs in the log.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Session seeds a form opened from a table row. A zero EditingID means
// create; otherwise the submit path must use update semantics for that id.
type Session[T any] struct {
	Record    T
	EditingID string
}

// Config wires a Controller. Store and ID are mandatory.
type Config[T any] struct {
	Store       Store[T]
	ID          func(T) string
	Match       Matcher[T]
	Confirm     Confirmer
	Notify      Notifier
	Log         *zap.SugaredLogger
	PageSize    int
	EntityLabel string // e.g. "atendimento", used in user-facing messages
}

// Controller holds the displayed record set and its search/page position.
type Controller[T any] struct {
	cfg Config[T]

	mu      sync.Mutex
	records []T
	term    string
	page    int

	// Fetches are numbered so a response that raced with a newer request
	// (or with a delete-triggered refresh) is discarded instead of
	// resurrecting rows the user no longer expects.
	issued uint64
}

// NewController validates cfg and returns an empty controller; call FetchAll
// to populate it.
func NewController[T any](cfg Config[T]) (*Controller[T], error) {
	if cfg.Store == nil {
		return nil, errNilStore
	}
	if cfg.ID == nil {
		return nil, errNilID
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.EntityLabel == "" {
		cfg.EntityLabel = "registro"
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	return &Controller[T]{cfg: cfg, page: 1}, nil
}

// FetchAll reloads the record set from the store. Stale responses lose: when
// a newer fetch was issued while this one was in flight, its result is
// dropped and the newer one wins.
func (c *Controller[T]) FetchAll(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	records, err := c.cfg.Store.List(ctx)
	if err != nil {
		c.cfg.Log.Errorw("list fetch failed", "entity", c.cfg.EntityLabel, "error", err)
		c.notifyError(fmt.Sprintf("Erro ao carregar %ss", c.cfg.EntityLabel))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.issued {
		c.cfg.Log.Debugw("stale list response discarded", "seq", seq, "latest", c.issued)
		return nil
	}
	c.records = records
	c.clampPageLocked()
	return nil
}

// Search filters the loaded records locally. A blank term clears the filter,
// falling back to the full list. The page position resets so results start
// from the first page.
func (c *Controller[T]) Search(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = term
	c.page = 1
}

// Visible returns the records matching the current search term.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibleLocked()
}

func (c *Controller[T]) visibleLocked() []T {
	if c.cfg.Match == nil {
		return c.records
	}
	return Filter(c.records, c.term, c.cfg.Match)
}

// CurrentPage returns the visible slice of the active page.
func (c *Controller[T]) CurrentPage() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Page(c.visibleLocked(), c.page, c.cfg.PageSize)
}

// PageNumber reports the 1-based active page.
func (c *Controller[T]) PageNumber() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalPages reports the page count of the current visible set.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TotalPages(len(c.visibleLocked()), c.cfg.PageSize)
}

// NextPage advances one page when one exists.
func (c *Controller[T]) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page < TotalPages(len(c.visibleLocked()), c.cfg.PageSize) {
		c.page++
	}
}

// PreviousPage steps back one page when possible.
func (c *Controller[T]) PreviousPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page > 1 {
		c.page--
	}
}

// Remove deletes one record after user confirmation and refreshes the list
// on success. Declined confirmations return ErrRemovalDeclined untouched.
func (c *Controller[T]) Remove(ctx context.Context, id string) error {
	if c.cfg.Confirm != nil {
		ok, err := c.cfg.Confirm.Confirm(fmt.Sprintf("Tem certeza que deseja excluir este %s?", c.cfg.EntityLabel))
		if err != nil {
			return err
		}
		if !ok {
			return ErrRemovalDeclined
		}
	}
	if err := c.cfg.Store.Delete(ctx, id); err != nil {
		c.cfg.Log.Errorw("delete failed", "entity", c.cfg.EntityLabel, "id", id, "error", err)
		c.notifyError(fmt.Sprintf("Erro ao excluir %s", c.cfg.EntityLabel))
		return err
	}
	c.notifySuccess(fmt.Sprintf("%s excluído com sucesso", c.cfg.EntityLabel))
	return c.FetchAll(ctx)
}

// OpenCreate seeds a blank form session.
func (c *Controller[T]) OpenCreate() Session[T] {
	return Session[T]{}
}

// OpenEdit seeds a form session for an existing record; its id selects
// update semantics on submit.
func (c *Controller[T]) OpenEdit(record T) Session[T] {
	return Session[T]{Record: record, EditingID: c.cfg.ID(record)}
}

func (c *Controller[T]) clampPageLocked() {
	total := TotalPages(len(c.visibleLocked()), c.cfg.PageSize)
	if total == 0 {
		c.page = 1
		return
	}
	if c.page > total {
		c.page = total
	}
}

func (c *Controller[T]) notifySuccess(msg string) {
	if c.cfg.Notify != nil {
		c.cfg.Notify.Success(msg)
	}
}

func (c *Controller[T]) notifyError(msg string) {
	if c.cfg.Notify != nil {
		c.cfg.Notify.Error(msg)
	}
}
