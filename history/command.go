package history

import (
	"errors"
	"fmt"
)

// ErrInvalidRevert indicates Revert was called on a command that never
// executed or never mutated state. This is a misuse of the engine, not a
// runtime condition.
var ErrInvalidRevert = errors.New("history: revert of command that never mutated state")

// Command represents one reversible operation bound to its receiver.
// Commands hold a reference to the subject they operate on; the engine never
// needs to know the subject's type.
type Command interface {
	// Execute performs the operation and reports whether subject state
	// changed. A command that needs a backup to reverse itself must
	// capture it before mutating.
	Execute() (bool, error)

	// Revert applies the command's backup to the subject, reversing the
	// most recent Execute. Returns ErrInvalidRevert if the command never
	// executed or did not mutate state.
	Revert() error

	// Description returns a human-readable description of the command.
	Description() string
}

// CommandFunc adapts a plain function to a Command. The function reports
// whether it mutated state. The returned command cannot revert itself; it is
// meant for snapshot-strategy subjects where the engine restores snapshots
// instead of calling Revert.
func CommandFunc(description string, fn func() (bool, error)) Command {
	return &funcCommand{description: description, fn: fn}
}

type funcCommand struct {
	description string
	fn          func() (bool, error)
}

func (c *funcCommand) Execute() (bool, error) {
	return c.fn()
}

func (c *funcCommand) Revert() error {
	return ErrInvalidRevert
}

func (c *funcCommand) Description() string {
	return c.description
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command

	// Members that mutated state on the last Execute, in execution order.
	applied []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order and reports whether any of them
// mutated state.
func (c *CompoundCommand) Execute() (bool, error) {
	c.applied = nil

	for i, cmd := range c.Commands {
		mutated, err := cmd.Execute()
		if err != nil {
			// On error, revert what we've done
			for j := len(c.applied) - 1; j >= 0; j-- {
				_ = c.applied[j].Revert()
			}
			c.applied = nil
			return false, fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
		if mutated {
			c.applied = append(c.applied, cmd)
		}
	}

	return len(c.applied) > 0, nil
}

// Revert reverses the mutating members in reverse execution order.
func (c *CompoundCommand) Revert() error {
	if len(c.applied) == 0 {
		return ErrInvalidRevert
	}

	for i := len(c.applied) - 1; i >= 0; i-- {
		if err := c.applied[i].Revert(); err != nil {
			return fmt.Errorf("revert compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}

// newExecutedCompound wraps commands that already executed and mutated
// individually, so the compound can revert them as one unit. Used when a
// group is closed.
func newExecutedCompound(name string, commands []Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
		applied:  commands,
	}
}
