package console

import "fmt"

// DialogState enumerates the add/edit dialog machine. The tagged states make
// the impossible combinations (an edit dialog with no target, a draft while
// closed) unrepresentable.
type DialogState int

const (
	Closed DialogState = iota
	AddDraft
	EditDraft
)

func (s DialogState) String() string {
	switch s {
	case AddDraft:
		return "add"
	case EditDraft:
		return "edit"
	default:
		return "closed"
	}
}

// DialogConfig wires a dialog to its console.
type DialogConfig[T Record] struct {
	// Defaults builds the empty add draft: empty strings, first enum value
	// for categorical fields.
	Defaults func() T
	// Clone produces the shallow copy edited in place of the live record.
	Clone func(T) T
	// Validate runs on commit. A non-nil error keeps the dialog open and
	// leaves the store untouched.
	Validate func(T) error
	// AssignID stamps a fresh identifier on an add draft just before the
	// insert. Edits keep the target's id.
	AssignID func(T)
}

// Dialog is the transient add/edit controller for one console. At most one
// dialog is open per console at a time; the draft exists only while the
// dialog is open.
type Dialog[T Record] struct {
	store *Store[T]
	cfg   DialogConfig[T]

	state  DialogState
	editID string
	draft  T
}

// NewDialog returns a closed dialog bound to store.
func NewDialog[T Record](store *Store[T], cfg DialogConfig[T]) *Dialog[T] {
	return &Dialog[T]{store: store, cfg: cfg}
}

// State reports the current machine state.
func (d *Dialog[T]) State() DialogState { return d.state }

// EditingID reports the target record id while in EditDraft.
func (d *Dialog[T]) EditingID() string { return d.editID }

// Draft exposes the working copy for field mutation. Zero while closed.
func (d *Dialog[T]) Draft() T { return d.draft }

// OpenAdd transitions Closed -> AddDraft with a defaults-initialized draft.
// Any previously open draft is discarded.
func (d *Dialog[T]) OpenAdd() {
	d.state = AddDraft
	d.editID = ""
	d.draft = d.cfg.Defaults()
}

// OpenEdit transitions Closed -> EditDraft with a shallow copy of the target
// record. An absent id is the one transition that can fail.
func (d *Dialog[T]) OpenEdit(id string) error {
	rec, ok := d.store.GetByID(id)
	if !ok {
		return fmt.Errorf("no record with id %s", id)
	}
	d.state = EditDraft
	d.editID = id
	d.draft = d.cfg.Clone(rec)
	return nil
}

// Commit validates the draft and applies the store mutation. On validation
// failure the dialog stays open with the draft intact so the caller can
// correct the input and retry; the store is never touched. On success the
// dialog closes and the committed record is returned.
func (d *Dialog[T]) Commit() (T, error) {
	var zero T
	switch d.state {
	case Closed:
		return zero, fmt.Errorf("no open dialog")
	case AddDraft:
		if err := d.cfg.Validate(d.draft); err != nil {
			return zero, err
		}
		if d.cfg.AssignID != nil {
			d.cfg.AssignID(d.draft)
		}
		d.store.Insert(d.draft)
	case EditDraft:
		if err := d.cfg.Validate(d.draft); err != nil {
			return zero, err
		}
		d.store.ReplaceByID(d.editID, d.draft)
	}
	rec := d.draft
	d.reset()
	return rec, nil
}

// Cancel discards the draft unconditionally and closes the dialog.
func (d *Dialog[T]) Cancel() { d.reset() }

func (d *Dialog[T]) reset() {
	var zero T
	d.state = Closed
	d.editID = ""
	d.draft = zero
}

// Cascade models a chain of dependent form fields where changing an upstream
// level invalidates everything below it (country -> state -> district ->
// mandal). Dialogs consult Downstream on each upstream change and reset the
// returned fields.
type Cascade struct {
	levels []string
}

// NewCascade builds a cascade from top level to bottom.
func NewCascade(levels ...string) Cascade {
	return Cascade{levels: levels}
}

// Downstream lists the fields below level, in order. Unknown levels have no
// downstream.
func (c Cascade) Downstream(level string) []string {
	for i, l := range c.levels {
		if l == level {
			return append([]string(nil), c.levels[i+1:]...)
		}
	}
	return nil
}

// Levels returns the full chain, top first.
func (c Cascade) Levels() []string {
	return append([]string(nil), c.levels...)
}
