package history

// GroupScope provides a convenient way to group commands using defer.
// Usage:
//
//	func doComplexEdit(e *history.Engine) {
//	    defer e.GroupScope("Complex Edit").End()
//	    // ... multiple edits ...
//	}
type GroupScope struct {
	engine *Engine
	active bool
}

// GroupScope starts a new group scope.
// Call End() or use with defer to properly close the group.
func (e *Engine) GroupScope(name string) *GroupScope {
	e.BeginGroup(name)
	return &GroupScope{
		engine: e,
		active: true,
	}
}

// End ends the group scope.
// Safe to call multiple times; only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.engine.EndGroup()
		g.active = false
	}
}

// Cancel cancels the group scope without creating a compound command.
// Note: Commands already executed still affect the subject.
func (g *GroupScope) Cancel() {
	if g.active {
		g.engine.CancelGroup()
		g.active = false
	}
}

// Transaction executes a function within a grouped undo context.
// If the function returns an error, the group is cancelled.
// Otherwise, the group is ended normally.
func (e *Engine) Transaction(name string, fn func() error) error {
	e.BeginGroup(name)

	err := fn()
	if err != nil {
		e.CancelGroup()
		return err
	}

	e.EndGroup()
	return nil
}

// ExecuteGrouped executes multiple commands as a single undo unit.
func (e *Engine) ExecuteGrouped(name string, cmds ...Command) error {
	if len(cmds) == 0 {
		return nil
	}

	if len(cmds) == 1 {
		// Single command doesn't need grouping
		return e.Execute(cmds[0])
	}

	e.BeginGroup(name)
	for _, cmd := range cmds {
		if err := e.Execute(cmd); err != nil {
			e.CancelGroup()
			return err
		}
	}
	e.EndGroup()
	return nil
}
