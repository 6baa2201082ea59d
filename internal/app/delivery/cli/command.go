package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// ErrReported marks a failure the presenter already showed to the user.
var ErrReported = errors.New("error already reported")

// Command is one node of the ccsed command tree.
type Command struct {
	Name    string
	Summary string
	Usage   string
	// Flags is called once per execution; nil means the command takes none.
	Flags       func() *pflag.FlagSet
	Subcommands []*Command
	Run         func(ctx context.Context, args []string) error

	parent *Command
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func (c *Command) Execute(ctx context.Context, args []string, out io.Writer) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(out)
		return nil
	}

	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		for _, sub := range c.Subcommands {
			if sub.Name == args[0] {
				sub.parent = c
				return sub.Execute(ctx, args[1:], out)
			}
		}
		return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage", args[0], c.fullName())
	}

	if c.Run == nil {
		c.PrintHelp(out)
		return errors.New("subcommand required")
	}

	if c.Flags != nil {
		flagSet := c.Flags()
		flagSet.SetOutput(io.Discard)
		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(out)
				return nil
			}
			return fmt.Errorf("%w\n\nRun '%s --help' for usage", err, c.fullName())
		}
		args = flagSet.Args()
	}
	return c.Run(ctx, args)
}

func (c *Command) PrintHelp(w io.Writer) {
	if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}
	usage := c.Usage
	if usage == "" {
		usage = c.fullName()
		if len(c.Subcommands) > 0 {
			usage += " <command>"
		}
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		width := 0
		for _, sub := range c.Subcommands {
			if len(sub.Name) > width {
				width = len(sub.Name)
			}
		}
		for _, sub := range c.Subcommands {
			fmt.Fprintf(w, "  %-*s  %s\n", width, sub.Name, sub.Summary)
		}
	}

	if c.Flags != nil {
		fmt.Fprintf(w, "\nFlags:\n%s", c.Flags().FlagUsages())
	}
}
