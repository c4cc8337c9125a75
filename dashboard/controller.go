package dashboard

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hopenndrive/admin/core"
	"github.com/hopenndrive/admin/core/entity"
)

// Store is the asynchronous collection a page controller works against.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields T) (T, error)
	Update(ctx context.Context, id string, fields T) (T, error)
	Delete(ctx context.Context, id string) error
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

var (
	errNotReady     = errors.New("page is not ready")
	errEditorClosed = errors.New("editor is not open")

	saveFailureNotice   = "Erreur lors de la sauvegarde"
	deleteFailureNotice = "Erreur lors de la suppression"
)

// PageConfig is the thin per-entity configuration a Controller is built from.
type PageConfig[T any] struct {
	// Name is the entity's singular display name, e.g. "ville".
	Name  string
	Table entity.Table[T]
	Form  []FormField
	Key   func(T) string
	// Label returns the record's human-readable label, used when asking for
	// delete confirmation.
	Label func(T) string
	// Fill projects a record into editor values for pre-filling; unset
	// optional fields become empty strings.
	Fill func(T) map[string]string
	// Decode normalizes editor values into store fields.
	Decode func(values map[string]string) (T, error)
}

// ConfirmFunc asks the user to confirm a destructive action on the named
// record.
type ConfirmFunc func(label string) bool

// Controller orchestrates one entity page: fetch on mount, open/close the
// editor, submit, delete with confirmation, and re-fetch after any mutation so
// the view always reflects store truth. It lives for the page's mounted
// lifetime; its record slice is a disposable rendering copy.
type Controller[T any] struct {
	cfg    PageConfig[T]
	store  Store[T]
	logger core.Logger

	state   State
	records []T
	loadErr error
	notice  string
	editor  Editor
}

func NewController[T any](cfg PageConfig[T], store Store[T], logger core.Logger) *Controller[T] {
	return &Controller[T]{cfg: cfg, store: store, logger: logger}
}

func (c *Controller[T]) State() State    { return c.state }
func (c *Controller[T]) Notice() string  { return c.notice }
func (c *Controller[T]) Editor() *Editor { return &c.editor }

// LoadError reports the last list fetch failure, if any. The page still
// reaches Ready so the user is never stuck on a spinner; callers should
// surface a retry affordance when this is non-nil.
func (c *Controller[T]) LoadError() error { return c.loadErr }

func (c *Controller[T]) Records() []T {
	return append([]T(nil), c.records...)
}

// View projects the current records through the page's column scheme.
func (c *Controller[T]) View() entity.TableView {
	return c.cfg.Table.Render(c.records, c.state == StateLoading)
}

// Load fetches the full collection. On failure the previous records are kept
// and the failure is recorded for retry.
func (c *Controller[T]) Load(ctx context.Context) {
	c.state = StateLoading
	recs, err := c.store.List(ctx)
	if err != nil {
		c.logger.Error("fetching "+c.cfg.Name+" list", err)
		c.loadErr = err
		c.state = StateReady
		return
	}
	c.records = recs
	c.loadErr = nil
	c.state = StateReady
}

// Retry re-runs a failed list fetch.
func (c *Controller[T]) Retry(ctx context.Context) {
	c.Load(ctx)
}

// OpenAdd opens the editor on a blank record. Gated on the page being Ready.
func (c *Controller[T]) OpenAdd() error {
	if c.state != StateReady {
		return errNotReady
	}
	c.notice = ""
	c.editor.OpenCreate(c.cfg.Form)
	return nil
}

// OpenEdit opens the editor pre-filled from rec.
func (c *Controller[T]) OpenEdit(rec T) error {
	if c.state != StateReady {
		return errNotReady
	}
	c.notice = ""
	c.editor.OpenEdit(c.cfg.Form, c.cfg.Key(rec), c.cfg.Fill(rec))
	return nil
}

// Submit validates the editor and creates or updates accordingly. On success
// the full list is re-fetched and the editor closes; on store failure the
// editor stays open with the entered values intact so the user can retry.
func (c *Controller[T]) Submit(ctx context.Context) error {
	if !c.editor.IsOpen() {
		return errEditorClosed
	}
	c.notice = ""

	if err := c.editor.Validate(); err != nil {
		return err
	}
	fields, err := c.cfg.Decode(c.editor.Values())
	if err != nil {
		return err
	}

	if c.editor.Mode() == ModeEdit {
		_, err = c.store.Update(ctx, c.editor.RecordID(), fields)
	} else {
		_, err = c.store.Create(ctx, fields)
	}
	if err != nil {
		c.logger.Error("saving "+c.cfg.Name, err)
		c.notice = saveFailureNotice
		return err
	}

	c.Load(ctx)
	c.editor.Cancel()
	return nil
}

// Delete removes rec after an explicit confirmation naming its label, then
// re-fetches the list.
func (c *Controller[T]) Delete(ctx context.Context, rec T, confirm ConfirmFunc) error {
	if c.state != StateReady {
		return errNotReady
	}
	c.notice = ""

	if !confirm(c.cfg.Label(rec)) {
		return nil
	}
	if err := c.store.Delete(ctx, c.cfg.Key(rec)); err != nil {
		c.logger.Error("deleting "+c.cfg.Name, err)
		c.notice = deleteFailureNotice
		return err
	}

	c.Load(ctx)
	return nil
}
