// Package console turns an open-ended set of store operations into a
// safe, discoverable command palette: a name -> operation dispatch
// table built once from a registration source, a shell-style
// tokenizer, and an executor with injectable audit/permission hooks.
package console

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Command is one registration triple supplied by a store adapter.
type Command struct {
	Name string
	Run  func(args ...string) (Result, error)
	Help string
}

// Source supplies the statically declared registration table for one
// store connection. Adapters over concrete store types implement it.
type Source interface {
	Commands() []Command
}

// Hook signatures. All default to no-op/allow when left nil.
type (
	BeforeFunc func(ctx context.Context, name string, args []string)
	AfterFunc  func(ctx context.Context, name string, args []string, result Result)
	CanUseFunc func(ctx context.Context, name string, args []string) bool
)

// Options configures one console instance at construction time.
type Options struct {
	// ExcludedCommands are never exposed, regardless of discovery.
	ExcludedCommands []string
	// RemappedCommands maps alias -> canonical name. Every canonical
	// name must exist in the table or New fails with ErrInit.
	RemappedCommands map[string]string

	Before BeforeFunc
	After  AfterFunc
	CanUse CanUseFunc
}

type entry struct {
	run  func(args ...string) (Result, error)
	help string
}

// Console owns an immutable dispatch table bound to one store
// connection. Safe for concurrent use: nothing mutates after New.
type Console struct {
	commands map[string]entry
	remap    map[string]string

	before BeforeFunc
	after  AfterFunc
	canUse CanUseFunc
}

const (
	helpHelpText   = "Help!"
	helpUsageText  = "Usage: help <command>.\nList of supported commands: "
	helpMissingDoc = "Command does not have any help."
)

// New builds the dispatch table from src. Exclusion applies uniformly
// by name. Built-ins are registered last and always win over a
// discovered command of the same name; that precedence is deliberate.
// No store operation is invoked during construction.
func New(src Source, opts Options) (*Console, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: store connection is not provided", ErrInit)
	}

	excluded := make(map[string]struct{}, len(opts.ExcludedCommands))
	for _, name := range opts.ExcludedCommands {
		excluded[strings.TrimSpace(name)] = struct{}{}
	}

	c := &Console{
		commands: make(map[string]entry),
		remap:    make(map[string]string, len(opts.RemappedCommands)),
		before:   opts.Before,
		after:    opts.After,
		canUse:   opts.CanUse,
	}

	for _, cmd := range src.Commands() {
		if cmd.Name == "" || cmd.Run == nil {
			continue
		}
		if _, skip := excluded[cmd.Name]; skip {
			continue
		}
		c.commands[cmd.Name] = entry{run: cmd.Run, help: strings.TrimSpace(cmd.Help)}
	}

	for alias, canonical := range opts.RemappedCommands {
		target, ok := c.commands[canonical]
		if !ok {
			return nil, fmt.Errorf("%w: remap %q references unknown command %q", ErrInit, alias, canonical)
		}
		// An excluded alias gets no remap entry either; it must stay
		// uninvocable, not merely unlisted.
		if _, skip := excluded[alias]; skip {
			continue
		}
		c.remap[alias] = canonical
		c.commands[alias] = target
	}

	c.commands["help"] = entry{run: c.cmdHelp, help: helpHelpText}
	return c, nil
}

// Names returns every exposed command name, sorted, aliases included.
func (c *Console) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Console) cmdHelp(args ...string) (Result, error) {
	if len(args) == 0 {
		return Text(helpUsageText + strings.Join(c.Names(), ", ")), nil
	}

	e, ok := c.commands[args[0]]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if e.help == "" {
		return Text(helpMissingDoc), nil
	}
	return Text(e.help), nil
}
