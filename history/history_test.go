package history

import (
	"errors"
	"testing"
)

// fakeOriginator is a snapshot-strategy subject whose whole state is one
// string.
type fakeOriginator struct {
	state       string
	initialized bool
}

func newFakeOriginator(state string) *fakeOriginator {
	return &fakeOriginator{state: state, initialized: true}
}

func (o *fakeOriginator) Capture(label string) (*Snapshot, error) {
	if !o.initialized {
		return nil, ErrEmptyState
	}
	return NewSnapshot(o.state, label), nil
}

func (o *fakeOriginator) Restore(snap *Snapshot) error {
	s, ok := snap.State().(string)
	if !ok {
		return errors.New("foreign snapshot")
	}
	o.state = s
	o.initialized = true
	return nil
}

// setCommand is a delta-strategy command that sets the subject's state and
// backs up only the previous value.
type setCommand struct {
	subject *fakeOriginator
	to      string
	prev    string
	mutated bool
}

func (c *setCommand) Execute() (bool, error) {
	if c.subject.state == c.to {
		return false, nil
	}
	c.prev = c.subject.state
	c.subject.state = c.to
	c.mutated = true
	return true, nil
}

func (c *setCommand) Revert() error {
	if !c.mutated {
		return ErrInvalidRevert
	}
	c.subject.state = c.prev
	return nil
}

func (c *setCommand) Description() string {
	return "Set " + c.to
}

// recordMutation applies a snapshot-strategy mutation: capture first, mutate,
// then record the pre-mutation snapshot.
func recordMutation(t *testing.T, e *Engine, o *fakeOriginator, to string) {
	t.Helper()
	snap, err := o.Capture("Set " + to)
	if err != nil {
		t.Fatalf("Capture() error: %v", err)
	}
	o.state = to
	e.Record(NewSnapshotEntry(snap))
}

// Snapshot tests

func TestSnapshotMetadata(t *testing.T) {
	snap := NewSnapshot("hello", "Set hello")
	if snap.State() != "hello" {
		t.Errorf("State() = %v, want %q", snap.State(), "hello")
	}
	if snap.Label() != "Set hello" {
		t.Errorf("Label() = %q, want %q", snap.Label(), "Set hello")
	}
	if snap.TakenAt().IsZero() {
		t.Error("timestamp not set")
	}
}

func TestCaptureEmptyState(t *testing.T) {
	o := &fakeOriginator{}
	if _, err := o.Capture("initial"); !errors.Is(err, ErrEmptyState) {
		t.Errorf("Capture() error = %v, want ErrEmptyState", err)
	}
}

// Engine tests, snapshot strategy

func TestUndoRedoSnapshot(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)

	recordMutation(t, e, o, "Y")
	if o.state != "Y" {
		t.Fatalf("state = %q, want %q", o.state, "Y")
	}

	if _, err := e.Undo(o); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if o.state != "X" {
		t.Errorf("after undo state = %q, want %q", o.state, "X")
	}

	if _, err := e.Redo(o); err != nil {
		t.Fatalf("Redo() error: %v", err)
	}
	if o.state != "Y" {
		t.Errorf("after redo state = %q, want %q", o.state, "Y")
	}
}

func TestUndoOrder(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	for _, s := range []string{"B", "C", "D"} {
		recordMutation(t, e, o, s)
	}

	want := []string{"C", "B", "A"}
	for _, w := range want {
		if _, err := e.Undo(o); err != nil {
			t.Fatalf("Undo() error: %v", err)
		}
		if o.state != w {
			t.Errorf("state = %q, want %q", o.state, w)
		}
	}
}

func TestUndoRedoCycle(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	recordMutation(t, e, o, "B")
	recordMutation(t, e, o, "C")
	recordMutation(t, e, o, "D")

	e.Undo(o)
	e.Undo(o)
	if o.state != "B" {
		t.Fatalf("after two undos state = %q, want %q", o.state, "B")
	}

	e.Redo(o)
	if o.state != "C" {
		t.Fatalf("after redo state = %q, want %q", o.state, "C")
	}

	// New mutation invalidates remaining redo entries
	recordMutation(t, e, o, "E")
	if e.CanRedo() {
		t.Error("redo stack should be empty after new mutation")
	}
	if _, err := e.Redo(o); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
	if o.state != "E" {
		t.Errorf("state = %q, want %q", o.state, "E")
	}
}

func TestEmptyStackOperations(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)

	for i := 0; i < 3; i++ {
		if _, err := e.Undo(o); !errors.Is(err, ErrNothingToUndo) {
			t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
		}
		if _, err := e.Redo(o); !errors.Is(err, ErrNothingToRedo) {
			t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
		}
	}
	if o.state != "X" {
		t.Errorf("state changed to %q by empty undo/redo", o.state)
	}
}

func TestSnapshotEntryRequiresOriginator(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)
	recordMutation(t, e, o, "Y")

	if _, err := e.Undo(nil); !errors.Is(err, ErrNoOriginator) {
		t.Errorf("Undo(nil) error = %v, want ErrNoOriginator", err)
	}
	// Entry is restored on failure
	if !e.CanUndo() {
		t.Error("entry should remain on undo stack after failed undo")
	}
}

// Engine tests, delta strategy

func TestExecuteRecordsMutatingCommand(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)

	if err := e.Execute(&setCommand{subject: o, to: "Y"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if e.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", e.UndoCount())
	}

	if _, err := e.Undo(nil); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if o.state != "X" {
		t.Errorf("after undo state = %q, want %q", o.state, "X")
	}

	if _, err := e.Redo(nil); err != nil {
		t.Fatalf("Redo() error: %v", err)
	}
	if o.state != "Y" {
		t.Errorf("after redo state = %q, want %q", o.state, "Y")
	}
}

func TestExecuteSkipsNonMutatingCommand(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)

	// Setting to the current value does not mutate
	if err := e.Execute(&setCommand{subject: o, to: "X"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if e.UndoCount() != 0 || e.RedoCount() != 0 {
		t.Errorf("stacks = %d/%d, want 0/0", e.UndoCount(), e.RedoCount())
	}
}

func TestRevertFailureKeepsEntry(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)

	// Record a command whose backup was never taken
	e.Record(NewCommandEntry(&setCommand{subject: o, to: "Y"}))

	if _, err := e.Undo(nil); !errors.Is(err, ErrInvalidRevert) {
		t.Errorf("Undo() error = %v, want ErrInvalidRevert", err)
	}
	if e.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1 after failed undo", e.UndoCount())
	}
	if e.RedoCount() != 0 {
		t.Errorf("RedoCount() = %d, want 0 after failed undo", e.RedoCount())
	}
}

// Inspection

func TestPeekDoesNotMutate(t *testing.T) {
	o := newFakeOriginator("X")
	e := NewEngine(0)

	if _, ok := e.PeekUndo(); ok {
		t.Error("PeekUndo() on empty stack should report false")
	}

	recordMutation(t, e, o, "Y")

	info, ok := e.PeekUndo()
	if !ok {
		t.Fatal("PeekUndo() should report true")
	}
	if info.Label != "Set Y" {
		t.Errorf("Label = %q, want %q", info.Label, "Set Y")
	}
	if info.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if e.UndoCount() != 1 {
		t.Errorf("PeekUndo() changed stack size to %d", e.UndoCount())
	}

	e.Undo(o)
	rinfo, ok := e.PeekRedo()
	if !ok {
		t.Fatal("PeekRedo() should report true")
	}
	if rinfo.Label != "Set Y" {
		t.Errorf("Label = %q, want %q", rinfo.Label, "Set Y")
	}
	if e.RedoCount() != 1 {
		t.Errorf("PeekRedo() changed stack size to %d", e.RedoCount())
	}
}

func TestUndoInfoOrder(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	for _, s := range []string{"B", "C", "D"} {
		recordMutation(t, e, o, s)
	}

	infos := e.UndoInfo()
	want := []string{"Set B", "Set C", "Set D"}
	if len(infos) != len(want) {
		t.Fatalf("len(UndoInfo()) = %d, want %d", len(infos), len(want))
	}
	for i, w := range want {
		if infos[i].Label != w {
			t.Errorf("UndoInfo()[%d].Label = %q, want %q", i, infos[i].Label, w)
		}
	}
}

func TestClear(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	recordMutation(t, e, o, "B")
	recordMutation(t, e, o, "C")
	e.Undo(o)

	e.Clear()
	if e.CanUndo() || e.CanRedo() {
		t.Error("stacks should be empty after Clear()")
	}
}

// Capacity

func TestMaxEntriesEvictsOldest(t *testing.T) {
	o := newFakeOriginator("s0")
	e := NewEngine(3)

	for _, s := range []string{"s1", "s2", "s3", "s4", "s5"} {
		recordMutation(t, e, o, s)
	}

	if e.UndoCount() != 3 {
		t.Fatalf("UndoCount() = %d, want 3", e.UndoCount())
	}

	infos := e.UndoInfo()
	if infos[0].Label != "Set s3" {
		t.Errorf("oldest entry = %q, want %q", infos[0].Label, "Set s3")
	}
}

func TestSetMaxEntriesShrinks(t *testing.T) {
	o := newFakeOriginator("s0")
	e := NewEngine(10)

	for _, s := range []string{"s1", "s2", "s3", "s4"} {
		recordMutation(t, e, o, s)
	}

	e.SetMaxEntries(2)
	if e.UndoCount() != 2 {
		t.Errorf("UndoCount() = %d, want 2", e.UndoCount())
	}
	if e.MaxEntries() != 2 {
		t.Errorf("MaxEntries() = %d, want 2", e.MaxEntries())
	}
}

// CommandFunc

func TestCommandFuncCannotRevert(t *testing.T) {
	cmd := CommandFunc("noop", func() (bool, error) { return false, nil })
	if cmd.Description() != "noop" {
		t.Errorf("Description() = %q, want %q", cmd.Description(), "noop")
	}
	if err := cmd.Revert(); !errors.Is(err, ErrInvalidRevert) {
		t.Errorf("Revert() error = %v, want ErrInvalidRevert", err)
	}
}
