package console

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestExecuteRemappedAliasInvokesCanonical(t *testing.T) {
	var gotArgs []string
	calls := 0
	deleteCmd := Command{
		Name: "delete",
		Run: func(args ...string) (Result, error) {
			calls++
			gotArgs = args
			return Text("1"), nil
		},
	}
	c := newTestConsole(t,
		Options{RemappedCommands: map[string]string{"del": "delete"}},
		deleteCmd,
	)

	result, err := c.Execute(context.Background(), "del", []string{"key1"})
	if err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one invocation, got %d", calls)
	}
	if !reflect.DeepEqual(gotArgs, []string{"key1"}) {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
	if result.Text != "1" {
		t.Fatalf("unexpected result: %q", result.Text)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	c := newTestConsole(t, Options{}, textCommand("get", ""))

	_, err := c.Execute(context.Background(), "nope", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestExecuteCanUseVetoShortCircuits(t *testing.T) {
	calls := 0
	probe := Command{
		Name: "get",
		Run: func(args ...string) (Result, error) {
			calls++
			return Text("value"), nil
		},
	}
	c := newTestConsole(t,
		Options{
			CanUse: func(ctx context.Context, name string, args []string) bool {
				return false
			},
		},
		probe,
	)

	_, err := c.Execute(context.Background(), "get", []string{"key"})
	if !errors.Is(err, ErrDenied) {
		t.Fatalf("expected ErrDenied, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("operation must not run when vetoed, ran %d times", calls)
	}
}

func TestExecuteWrapsOperationFailure(t *testing.T) {
	boom := Command{
		Name: "get",
		Run: func(args ...string) (Result, error) {
			return Result{}, errors.New("boom")
		},
	}
	c := newTestConsole(t, Options{}, boom)

	_, err := c.Execute(context.Background(), "get", []string{"key"})
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %v", err)
	}
	if opErr.Command != "get" {
		t.Fatalf("unexpected command: %q", opErr.Command)
	}
	if err.Error() != "boom" {
		t.Fatalf("operation message must pass through verbatim, got %q", err.Error())
	}
}

func TestExecuteHookOrder(t *testing.T) {
	var order []string
	cmd := Command{
		Name: "get",
		Run: func(args ...string) (Result, error) {
			order = append(order, "run")
			return Text("value"), nil
		},
	}
	c := newTestConsole(t,
		Options{
			Before: func(ctx context.Context, name string, args []string) {
				order = append(order, "before")
			},
			After: func(ctx context.Context, name string, args []string, result Result) {
				order = append(order, "after:"+result.Text)
			},
			CanUse: func(ctx context.Context, name string, args []string) bool {
				order = append(order, "canuse")
				return true
			},
		},
		cmd,
	)

	if _, err := c.Execute(context.Background(), "get", nil); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	want := []string{"before", "canuse", "run", "after:value"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("unexpected hook order: got %v want %v", order, want)
	}
}

func TestExecuteAfterHookSkippedOnFailure(t *testing.T) {
	afterCalls := 0
	cmd := Command{
		Name: "get",
		Run: func(args ...string) (Result, error) {
			return Result{}, errors.New("boom")
		},
	}
	c := newTestConsole(t,
		Options{
			After: func(ctx context.Context, name string, args []string, result Result) {
				afterCalls++
			},
		},
		cmd,
	)

	if _, err := c.Execute(context.Background(), "get", nil); err == nil {
		t.Fatalf("expected failure")
	}
	if afterCalls != 0 {
		t.Fatalf("after hook must not fire on failure, fired %d times", afterCalls)
	}
}

func TestExecuteIdempotentForReadOnlyCommand(t *testing.T) {
	cmd := Command{
		Name: "get",
		Run: func(args ...string) (Result, error) {
			return Text("stable"), nil
		},
	}
	c := newTestConsole(t, Options{}, cmd)

	first, err := c.Execute(context.Background(), "get", []string{"key"})
	if err != nil {
		t.Fatalf("first execute failed: %v", err)
	}
	second, err := c.Execute(context.Background(), "get", []string{"key"})
	if err != nil {
		t.Fatalf("second execute failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if first.TypeName() != second.TypeName() {
		t.Fatalf("type names differ: %q vs %q", first.TypeName(), second.TypeName())
	}
}
