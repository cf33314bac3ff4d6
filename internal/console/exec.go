package console

import (
	"context"
	"fmt"
)

// Execute resolves name through the remap table and invokes the
// matching operation with args expanded positionally. Hook order is
// before -> can-use -> operation -> after; a can-use veto short-circuits
// with ErrDenied and the operation is never invoked. Operation failures
// come back as *OperationError. No retries, no partial application.
func (c *Console) Execute(ctx context.Context, name string, args []string) (Result, error) {
	if canonical, ok := c.remap[name]; ok {
		name = canonical
	}

	e, ok := c.commands[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if c.before != nil {
		c.before(ctx, name, args)
	}
	if c.canUse != nil && !c.canUse(ctx, name, args) {
		return Result{}, fmt.Errorf("%w: %s", ErrDenied, name)
	}

	result, err := e.run(args...)
	if err != nil {
		return Result{}, &OperationError{Command: name, Err: err}
	}

	if c.after != nil {
		c.after(ctx, name, args, result)
	}
	return result, nil
}
