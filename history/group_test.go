package history

import (
	"errors"
	"testing"
)

func TestCompoundCommandExecuteAndRevert(t *testing.T) {
	o := newFakeOriginator("A")
	compound := NewCompoundCommand("Set B then C",
		&setCommand{subject: o, to: "B"},
		&setCommand{subject: o, to: "C"},
	)

	mutated, err := compound.Execute()
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !mutated {
		t.Error("compound of mutating commands should report mutated")
	}
	if o.state != "C" {
		t.Errorf("state = %q, want %q", o.state, "C")
	}

	if err := compound.Revert(); err != nil {
		t.Fatalf("Revert() error: %v", err)
	}
	if o.state != "A" {
		t.Errorf("after revert state = %q, want %q", o.state, "A")
	}
}

func TestCompoundCommandRevertBeforeExecute(t *testing.T) {
	o := newFakeOriginator("A")
	compound := NewCompoundCommand("never ran", &setCommand{subject: o, to: "B"})

	if err := compound.Revert(); !errors.Is(err, ErrInvalidRevert) {
		t.Errorf("Revert() error = %v, want ErrInvalidRevert", err)
	}
}

func TestCompoundCommandDescription(t *testing.T) {
	tests := []struct {
		name     string
		compound *CompoundCommand
		want     string
	}{
		{"named", NewCompoundCommand("Reformat"), "Reformat"},
		{"single unnamed", NewCompoundCommand("", &setCommand{to: "B"}), "Set B"},
		{"multiple unnamed", NewCompoundCommand("", &setCommand{to: "B"}, &setCommand{to: "C"}), "2 operations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.compound.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupingCombinesCommands(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	e.BeginGroup("batch edit")
	e.Execute(&setCommand{subject: o, to: "B"})
	e.Execute(&setCommand{subject: o, to: "C"})
	e.EndGroup()

	if e.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1 after grouped edits", e.UndoCount())
	}
	info, _ := e.PeekUndo()
	if info.Label != "batch edit" {
		t.Errorf("Label = %q, want %q", info.Label, "batch edit")
	}

	if _, err := e.Undo(nil); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if o.state != "A" {
		t.Errorf("after undo state = %q, want %q", o.state, "A")
	}

	if _, err := e.Redo(nil); err != nil {
		t.Fatalf("Redo() error: %v", err)
	}
	if o.state != "C" {
		t.Errorf("after redo state = %q, want %q", o.state, "C")
	}
}

func TestEmptyGroupRecordsNothing(t *testing.T) {
	e := NewEngine(0)

	e.BeginGroup("empty")
	e.EndGroup()

	if e.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0", e.UndoCount())
	}
}

func TestCancelGroupDiscardsCommands(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	e.BeginGroup("cancelled")
	e.Execute(&setCommand{subject: o, to: "B"})
	e.CancelGroup()

	if e.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0 after cancel", e.UndoCount())
	}
	// The executed command still affected the subject
	if o.state != "B" {
		t.Errorf("state = %q, want %q", o.state, "B")
	}
}

func TestGroupScopeEnd(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	func() {
		defer e.GroupScope("scoped").End()
		e.Execute(&setCommand{subject: o, to: "B"})
		e.Execute(&setCommand{subject: o, to: "C"})
	}()

	if e.UndoCount() != 1 {
		t.Errorf("UndoCount() = %d, want 1", e.UndoCount())
	}
	if e.IsGrouping() {
		t.Error("grouping should be closed")
	}
}

func TestTransactionCancelsOnError(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	wantErr := errors.New("boom")
	err := e.Transaction("failing", func() error {
		e.Execute(&setCommand{subject: o, to: "B"})
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Transaction() error = %v, want %v", err, wantErr)
	}
	if e.UndoCount() != 0 {
		t.Errorf("UndoCount() = %d, want 0 after failed transaction", e.UndoCount())
	}
}

func TestExecuteGrouped(t *testing.T) {
	o := newFakeOriginator("A")
	e := NewEngine(0)

	err := e.ExecuteGrouped("multi",
		&setCommand{subject: o, to: "B"},
		&setCommand{subject: o, to: "C"},
	)
	if err != nil {
		t.Fatalf("ExecuteGrouped() error: %v", err)
	}
	if e.UndoCount() != 1 {
		t.Fatalf("UndoCount() = %d, want 1", e.UndoCount())
	}

	e.Undo(nil)
	if o.state != "A" {
		t.Errorf("after undo state = %q, want %q", o.state, "A")
	}
}
