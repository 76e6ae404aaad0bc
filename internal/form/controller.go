// Package form implements the transaction form: four input fields, the
// grid of stored rows and the add, update, delete, select, clear and export
// actions that tie them to the store.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mohamedlefliti/projetennaciria/internal/grid"
	"github.com/mohamedlefliti/projetennaciria/internal/models"
	"github.com/mohamedlefliti/projetennaciria/internal/repository"
	"github.com/mohamedlefliti/projetennaciria/internal/util"

	"github.com/rs/zerolog"
)

const (
	MsgAdded   = "transaction added successfully"
	MsgUpdated = "transaction updated successfully"
	MsgDeleted = "transaction deleted successfully"
	MsgCleared = "fields cleared"

	ConfirmDeletePrompt = "Are you sure you want to delete this transaction?"
)

// MsgExported is the success message for an export to path.
func MsgExported(path string) string {
	return fmt.Sprintf("data exported to %s", path)
}

// Store is the write and read side of the transaction repository.
type Store interface {
	Insert(ctx context.Context, in models.Input) (models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	Update(ctx context.Context, id uint, in models.Input) error
	Delete(ctx context.Context, id uint) error
}

type Exporter interface {
	Export(ctx context.Context) (string, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })
	Declined  Confirmer = ConfirmFunc(func(string) bool { return false })
)

// Fields is the raw text of the four input fields.
type Fields struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// input validates the fields: blanks first, then the amount.
func (f Fields) input() (models.Input, error) {
	if err := util.ValidateRequired(
		"description", f.Description,
		"amount", f.Amount,
		"type", f.Type,
		"category", f.Category,
	); err != nil {
		return models.Input{}, fmt.Errorf("%w (%v)", ErrMissingFields, err)
	}
	amount, err := util.ParseAmount(f.Amount)
	if err != nil {
		return models.Input{}, fmt.Errorf("%w (%v)", ErrInvalidAmount, err)
	}
	return models.Input{
		Description: strings.TrimSpace(f.Description),
		Amount:      amount,
		Type:        strings.TrimSpace(f.Type),
		Category:    strings.TrimSpace(f.Category),
	}, nil
}

func fieldsOf(tx models.Transaction) Fields {
	return Fields{
		Description: tx.Description,
		Amount:      grid.FormatAmount(tx.Amount),
		Type:        tx.Type,
		Category:    tx.Category,
	}
}

// Snapshot is a consistent copy of what the form shows.
type Snapshot struct {
	Rows     []models.Transaction
	Selected int
	Fields   Fields
}

// Controller runs form actions one at a time. Every mutation is followed by
// a full reload of the grid from the store, which drops the selection.
type Controller struct {
	mu       sync.Mutex
	store    Store
	exporter Exporter
	grid     *grid.State
	fields   Fields
	log      zerolog.Logger
}

func NewController(store Store, exporter Exporter, log zerolog.Logger) *Controller {
	return &Controller{
		store:    store,
		exporter: exporter,
		grid:     grid.New(),
		log:      log.With().Str("component", "form").Logger(),
	}
}

// Reload rebuilds the grid from the store.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done("reload", c.reload(ctx), "")
}

func (c *Controller) reload(ctx context.Context) error {
	rows, err := c.store.ListAll(ctx)
	if err != nil {
		return &StorageError{Op: "load transactions", Err: err}
	}
	c.grid.Load(rows)
	return nil
}

// Add inserts a row built from the current fields.
func (c *Controller) Add(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(ctx)
}

// AddFields replaces the fields with f and adds them as one action, so no
// other caller can change the fields in between.
func (c *Controller) AddFields(ctx context.Context, f Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
	return c.add(ctx)
}

func (c *Controller) add(ctx context.Context) error {
	in, err := c.fields.input()
	if err != nil {
		return c.done("add", err, "")
	}
	if _, err := c.store.Insert(ctx, in); err != nil {
		return c.done("add", &StorageError{Op: "add transaction", Err: err}, "")
	}
	if err := c.reload(ctx); err != nil {
		return c.done("add", err, "")
	}
	c.fields = Fields{}
	return c.done("add", nil, MsgAdded)
}

// Update rewrites the selected row with the current fields.
func (c *Controller) Update(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.update(ctx)
}

// UpdateFields is Update with the fields replaced by f under the same lock.
func (c *Controller) UpdateFields(ctx context.Context, f Fields) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
	return c.update(ctx)
}

func (c *Controller) update(ctx context.Context) error {
	row, ok := c.grid.Selected()
	if !ok {
		return c.done("update", ErrNoSelection, "")
	}
	in, err := c.fields.input()
	if err != nil {
		return c.done("update", err, "")
	}
	if err := c.store.Update(ctx, row.ID, in); err != nil {
		return c.done("update", c.storageFailure(ctx, "update transaction", err), "")
	}
	if err := c.reload(ctx); err != nil {
		return c.done("update", err, "")
	}
	c.fields = Fields{}
	return c.done("update", nil, MsgUpdated)
}

// Delete removes the selected row once confirm agrees. A declined
// confirmation returns ErrCancelled and changes nothing.
func (c *Controller) Delete(ctx context.Context, confirm Confirmer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, ok := c.grid.Selected()
	if !ok {
		return c.done("delete", ErrNoSelection, "")
	}
	if confirm == nil || !confirm.Confirm(ConfirmDeletePrompt) {
		return c.done("delete", ErrCancelled, "")
	}
	if err := c.store.Delete(ctx, row.ID); err != nil {
		return c.done("delete", c.storageFailure(ctx, "delete transaction", err), "")
	}
	if err := c.reload(ctx); err != nil {
		return c.done("delete", err, "")
	}
	c.fields = Fields{}
	return c.done("delete", nil, MsgDeleted)
}

// storageFailure wraps err. A row that vanished from the store is dropped
// from the grid by reloading it.
func (c *Controller) storageFailure(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		if rerr := c.reload(ctx); rerr != nil {
			c.log.Error().Err(rerr).Msg("reload after missing row")
		}
	}
	return &StorageError{Op: op, Err: err}
}

// Select copies row i's editable fields into the form.
func (c *Controller) Select(i int) (Fields, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row, err := c.grid.Select(i)
	if err != nil {
		return c.fields, c.done("select", err, "")
	}
	c.fields = fieldsOf(row)
	c.log.Debug().Str("action", "select").Uint("id", row.ID).Msg("row selected")
	return c.fields, nil
}

func (c *Controller) Unselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Unselect()
}

// Clear empties the four fields. The selection is kept.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = Fields{}
}

// Export writes every stored row to the export file and returns its path.
func (c *Controller) Export(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	path, err := c.exporter.Export(ctx)
	if err != nil {
		return "", c.done("export", &ExportError{Err: err}, "")
	}
	return path, c.done("export", nil, MsgExported(path))
}

func (c *Controller) SetFields(f Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
}

func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// HasSelection reports whether update and delete have a row to act on.
func (c *Controller) HasSelection() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.grid.Selected()
	return ok
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Rows:     c.grid.Rows(),
		Selected: c.grid.SelectedIndex(),
		Fields:   c.fields,
	}
}

// done logs the outcome of action and returns err unchanged.
func (c *Controller) done(action string, err error, msg string) error {
	switch Classify(err) {
	case Info:
		if msg != "" {
			c.log.Info().Str("action", action).Int("rows", c.grid.Len()).Msg(msg)
		}
	case Warning:
		c.log.Warn().Str("action", action).Err(err).Msg("action rejected")
	default:
		c.log.Error().Str("action", action).Err(err).Msg("action failed")
	}
	return err
}
