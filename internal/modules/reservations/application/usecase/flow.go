package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	menu "dinesync/internal/modules/menu/domain"
	ordering "dinesync/internal/modules/ordering/domain"
	"dinesync/internal/modules/reservations/application/port"
	"dinesync/internal/modules/reservations/domain"
	"dinesync/internal/platform/scheduler"
)

var (
	ErrInvalidState = errors.New("operation not allowed in current state")
	ErrFormLocked   = errors.New("reservation form is locked while submitting")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrFlowClosed   = errors.New("reservation flow closed")
)

// Catalog is the menu lookup the flow prices against.
type Catalog interface {
	Get(id int) (menu.MenuItem, error)
}

// FlowDeps wires a Flow to its collaborators. Notifier and Events may be nil.
type FlowDeps struct {
	Catalog     Catalog
	Scheduler   scheduler.Scheduler
	Notifier    port.Notifier
	Events      port.EventPublisher
	SubmitDelay time.Duration
	ClearDelay  time.Duration
	Logger      *slog.Logger
}

// Flow drives one reservation session from the form through menu selection to the
// confirmation. Every method is safe for concurrent use; calls are serialized.
type Flow struct {
	id   string
	deps FlowDeps
	log  *slog.Logger

	mu           sync.Mutex
	state        domain.State
	draft        domain.Draft
	errs         domain.ValidationErrors
	cart         ordering.Cart
	confirmation *ordering.Confirmation
	submitTask   scheduler.Task
	clearTask    scheduler.Task
	closed       bool
}

// FlowView is a point-in-time copy of the flow for rendering.
type FlowView struct {
	SessionID    string                  `json:"sessionId"`
	State        domain.State            `json:"state"`
	Draft        domain.Draft            `json:"draft"`
	Errors       domain.ValidationErrors `json:"errors"`
	Lines        []ordering.PricedLine   `json:"lines"`
	Total        decimal.Decimal         `json:"total"`
	Confirmation *ordering.Confirmation  `json:"confirmation,omitempty"`
	TimeSlots    []string                `json:"timeSlots"`
	MinDate      string                  `json:"minDate"`
}

func NewFlow(id string, deps FlowDeps) *Flow {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		id:    id,
		deps:  deps,
		log:   logger.With(slog.String("sessionId", id)),
		state: domain.StateEditing,
		draft: domain.NewDraft(),
		errs:  domain.ValidationErrors{},
	}
}

func (f *Flow) ID() string { return f.id }

func (f *Flow) State() domain.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetField assigns one draft field and clears that field's validation error.
func (f *Flow) SetField(field domain.Field, value string) error {
	return f.SetFields(map[domain.Field]string{field: value})
}

// SetFields assigns several fields at once. Either every field is applied or none is.
func (f *Flow) SetFields(fields map[domain.Field]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireEditableLocked("set fields"); err != nil {
		return err
	}

	keys := make([]string, 0, len(fields))
	for field := range fields {
		keys = append(keys, string(field))
	}
	sort.Strings(keys)

	next := f.draft
	today := f.deps.Scheduler.Now()
	for _, key := range keys {
		field := domain.Field(key)
		if err := next.Set(field, fields[field], today); err != nil {
			return err
		}
	}
	f.draft = next
	for field := range fields {
		delete(f.errs, field)
	}
	return nil
}

// AdjustPartySize moves the party size by delta, clamped to the allowed range.
func (f *Flow) AdjustPartySize(delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireEditableLocked("adjust party size"); err != nil {
		return 0, err
	}
	f.draft.AdjustPartySize(delta)
	delete(f.errs, domain.FieldPartySize)
	return f.draft.PartySize, nil
}

// Submit validates the draft. A valid draft moves to Submitting and resolves to
// Submitted after the submit delay; an invalid one stays in Editing and the returned
// error is a domain.ValidationErrors.
func (f *Flow) Submit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireStateLocked("submit", domain.StateEditing); err != nil {
		return err
	}

	if errs := domain.Validate(f.draft); len(errs) > 0 {
		f.errs = errs
		f.log.Info("reservation submit rejected", slog.Int("errors", len(errs)))
		f.notifyLocked(domain.KindError, domain.MessageInvalidForm)
		return errs.Clone()
	}

	f.errs = domain.ValidationErrors{}
	f.state = domain.StateSubmitting
	f.submitTask = f.deps.Scheduler.AfterFunc(f.deps.SubmitDelay, f.completeSubmit)
	f.log.Info("reservation submitting", slog.Duration("delay", f.deps.SubmitDelay))
	return nil
}

func (f *Flow) completeSubmit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitTask = nil
	if f.closed || f.state != domain.StateSubmitting {
		return
	}
	f.state = domain.StateSubmitted
	f.log.Info("reservation submitted")
	f.notifyLocked(domain.KindSuccess, domain.MessageSubmitted)
	f.publishLocked(port.EventReservationSubmitted, f.draft)
}

func (f *Flow) ProceedToMenu() error {
	return f.transition("proceed to menu", domain.StateSubmitted, domain.StateSelectingMenu)
}

// Back returns from menu selection to the submitted view. The cart is kept.
func (f *Flow) Back() error {
	return f.transition("back", domain.StateSelectingMenu, domain.StateSubmitted)
}

func (f *Flow) transition(op string, from, to domain.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireStateLocked(op, from); err != nil {
		return err
	}
	f.state = to
	f.log.Debug("reservation flow transition", slog.String("from", from.String()), slog.String("to", to.String()))
	return nil
}

// AddItem puts one more of the item in the cart and returns its quantity.
func (f *Flow) AddItem(itemID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireStateLocked("add item", domain.StateSelectingMenu); err != nil {
		return 0, err
	}
	item, err := f.deps.Catalog.Get(itemID)
	if err != nil {
		return 0, err
	}

	quantity := f.cart.Add(itemID)
	if quantity == 1 {
		f.notifyLocked(domain.KindSuccess, domain.MessageAdded(item.Name))
	} else {
		f.notifyLocked(domain.KindInfo, domain.MessageAddedAnother(item.Name))
	}
	return quantity, nil
}

// RemoveItem takes one of the item out of the cart and returns what is left. A missing
// line leaves the cart untouched and returns ordering.ErrCartLineNotFound.
func (f *Flow) RemoveItem(itemID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireStateLocked("remove item", domain.StateSelectingMenu); err != nil {
		return 0, err
	}
	remaining, err := f.cart.Remove(itemID)
	if err != nil {
		return 0, err
	}

	name := fmt.Sprintf("item %d", itemID)
	if item, err := f.deps.Catalog.Get(itemID); err == nil {
		name = item.Name
	}
	if remaining > 0 {
		f.notifyLocked(domain.KindInfo, domain.MessageRemovedOne(name))
	} else {
		f.notifyLocked(domain.KindError, domain.MessageRemoved(name))
	}
	return remaining, nil
}

// Total prices the live cart against the catalog.
func (f *Flow) Total() (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cart.Total(f.deps.Catalog)
}

// Finalize snapshots draft and cart and moves to Confirmed. The live draft and cart
// are cleared after the clear delay; the snapshot is unaffected.
func (f *Flow) Finalize() (*ordering.Confirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireStateLocked("finalize", domain.StateSelectingMenu); err != nil {
		return nil, err
	}
	if f.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	confirmation, err := ordering.NewConfirmation(f.draft, &f.cart, f.deps.Catalog, f.deps.Scheduler.Now())
	if err != nil {
		return nil, err
	}
	f.confirmation = confirmation
	f.state = domain.StateConfirmed
	f.clearTask = f.deps.Scheduler.AfterFunc(f.deps.ClearDelay, f.clearLive)

	f.log.Info("order finalized",
		slog.String("orderId", confirmation.OrderID),
		slog.Int("items", confirmation.ItemCount()),
		slog.String("total", confirmation.Total.StringFixed(2)),
	)
	f.notifyLocked(domain.KindSuccess, domain.MessageFinalized)
	f.publishLocked(port.EventOrderFinalized, confirmation)

	copied := *confirmation
	return &copied, nil
}

func (f *Flow) clearLive() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearTask = nil
	if f.closed || f.state != domain.StateConfirmed {
		return
	}
	f.draft = domain.NewDraft()
	f.cart.Clear()
	f.log.Debug("live draft and cart cleared")
}

// StartNew leaves the confirmation and resets everything to an empty form. A pending
// clear is cancelled.
func (f *Flow) StartNew() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.requireStateLocked("start new", domain.StateConfirmed); err != nil {
		return err
	}
	if f.clearTask != nil {
		f.clearTask.Cancel()
		f.clearTask = nil
	}
	f.state = domain.StateEditing
	f.draft = domain.NewDraft()
	f.cart.Clear()
	f.errs = domain.ValidationErrors{}
	f.confirmation = nil
	return nil
}

// View copies the current flow state.
func (f *Flow) View() (FlowView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines, total, err := f.cart.Price(f.deps.Catalog)
	if err != nil {
		return FlowView{}, err
	}
	view := FlowView{
		SessionID: f.id,
		State:     f.state,
		Draft:     f.draft,
		Errors:    f.errs.Clone(),
		Lines:     lines,
		Total:     total,
		TimeSlots: domain.TimeSlots(),
		MinDate:   domain.MinDate(f.deps.Scheduler.Now()),
	}
	if f.confirmation != nil {
		copied := *f.confirmation
		view.Confirmation = &copied
	}
	return view, nil
}

// CartLines returns the raw cart lines.
func (f *Flow) CartLines() []ordering.Line {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cart.Lines()
}

// Close tears the flow down. Pending continuations are cancelled and any that already
// fired do nothing. Later calls fail with ErrFlowClosed.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for _, task := range []scheduler.Task{f.submitTask, f.clearTask} {
		if task != nil {
			task.Cancel()
		}
	}
	f.submitTask, f.clearTask = nil, nil
	f.log.Debug("reservation flow closed")
}

func (f *Flow) requireStateLocked(op string, want domain.State) error {
	if f.closed {
		return ErrFlowClosed
	}
	if f.state != want {
		return fmt.Errorf("%w: %s in %s", ErrInvalidState, op, f.state)
	}
	return nil
}

func (f *Flow) requireEditableLocked(op string) error {
	if f.closed {
		return ErrFlowClosed
	}
	if f.state.FormLocked() {
		return ErrFormLocked
	}
	return f.requireStateLocked(op, domain.StateEditing)
}

func (f *Flow) notifyLocked(kind domain.NotificationKind, message string) {
	if f.deps.Notifier == nil {
		return
	}
	f.deps.Notifier.Notify(domain.Notification{Kind: kind, Message: message, State: f.state})
}

func (f *Flow) publishLocked(eventType string, data any) {
	if f.deps.Events == nil {
		return
	}
	event := port.FlowEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		SessionID:  f.id,
		OccurredAt: f.deps.Scheduler.Now().UTC(),
		Data:       data,
	}
	if err := f.deps.Events.Publish(context.Background(), event); err != nil {
		f.log.Warn("flow event publish failed", slog.String("type", eventType), slog.Any("error", err))
	}
}
