package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	EmptyCondition = func(*Environment) bool { return true }
	EmptyFunction  = func(*Environment, *cobra.Command, []string) error { return nil }
	EmptyFlag      = func(cmd *cobra.Command) {}
)

func NewBuilder() *Builder {
	return &Builder{
		args:      cobra.NoArgs,
		flags:     EmptyFlag,
		condition: EmptyCondition,
		command:   EmptyFunction,
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args cobra.PositionalArgs) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fn func(*Environment, *cobra.Command, []string) error) *Builder {
	cb.command = fn
	return cb
}

func (cb *Builder) Condition(fn func(*Environment) bool) *Builder {
	cb.condition = fn
	return cb
}

func (cb *Builder) DependsOn(fns ...func(*Environment, []string) error) *Builder {
	cb.dependsOn = append(cb.dependsOn, fns...)
	return cb
}

func (cb *Builder) Build() Command {
	return Command{
		Parent:    cb.parent,
		Name:      cb.name,
		Short:     cb.short,
		Args:      cb.args,
		Flags:     cb.flags,
		Command:   cb.command,
		Condition: cb.condition,
		DependsOn: cb.dependsOn,
	}
}

func (cb *Builder) Validate() error {
	if cb.name == "" {
		return fmt.Errorf("command name is required")
	}
	if cb.parent == "" {
		return fmt.Errorf("command parent is required")
	}
	return nil
}

func (cb *Builder) BuildWithValidation() Command {
	if err := cb.Validate(); err != nil {
		panic(err)
	}

	return cb.Build()
}
