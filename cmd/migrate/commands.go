package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/schoolms/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

var (
	errUnknownCommand  = errors.New("unknown command")
	errDropUnconfirmed = errors.New("drop needs -confirm")
)

// schemaMigrator is the part of *migration.Migrator the commands drive
type schemaMigrator interface {
	Up() error
	Down() error
	Steps(n int) error
	GoTo(version uint) error
	Version() (uint, bool, error)
	Force(version int) error
	Drop() error
}

type env struct {
	dir  string
	log  *zap.Logger
	out  io.Writer
	open func() (schemaMigrator, func(), error)
}

type command struct {
	name    string
	usage   string
	summary string
	// offline commands only touch the migrations directory
	offline bool
	nargs   int
	run     func(e *env, m schemaMigrator, args []string) error
}

var commands = []command{
	{name: "up", summary: "Apply all pending migrations",
		run: func(_ *env, m schemaMigrator, _ []string) error { return m.Up() }},
	{name: "down", summary: "Roll back all migrations",
		run: func(_ *env, m schemaMigrator, _ []string) error { return m.Down() }},
	{name: "step", usage: "<n>", summary: "Apply n migrations, negative n rolls back", nargs: 1,
		run: func(_ *env, m schemaMigrator, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n == 0 {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return m.Steps(n)
		}},
	{name: "goto", usage: "<version>", summary: "Migrate up or down to version", nargs: 1,
		run: func(_ *env, m schemaMigrator, args []string) error {
			v, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return m.GoTo(uint(v))
		}},
	{name: "version", summary: "Show the applied version and dirty flag",
		run: func(e *env, m schemaMigrator, _ []string) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if v == 0 {
				fmt.Fprintln(e.out, "no migrations applied")
				return nil
			}
			fmt.Fprintf(e.out, "version %d (dirty: %t)\n", v, dirty)
			return nil
		}},
	{name: "force", usage: "<version>", summary: "Set the version without running SQL, clears dirty", nargs: 1,
		run: func(e *env, m schemaMigrator, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			e.log.Warn("Forcing migration version", zap.Int("version", v))
			return m.Force(v)
		}},
	{name: "drop", usage: "-confirm", summary: "Drop every table in the database",
		run: func(e *env, m schemaMigrator, args []string) error {
			if !slices.Contains(args, "-confirm") && !slices.Contains(args, "--confirm") {
				return errDropUnconfirmed
			}
			e.log.Warn("Dropping all database objects")
			return m.Drop()
		}},
	{name: "create", usage: "<name> [description]", summary: "Write the next numbered up/down file pair",
		offline: true, nargs: 1,
		run: func(e *env, _ schemaMigrator, args []string) error {
			desc := ""
			if len(args) > 1 {
				desc = args[1]
			}
			mf, err := migration.CreateMigration(e.dir, args[0], desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "%s\n%s\n", mf.UpPath, mf.DownPath)
			return nil
		}},
	{name: "list", summary: "List migration names in the directory", offline: true,
		run: func(e *env, _ schemaMigrator, _ []string) error {
			names, err := migration.ListMigrations(e.dir)
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(e.out, n)
			}
			return nil
		}},
}

func lookup(name string) (command, bool) {
	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		return command{}, false
	}
	return commands[i], true
}

// run executes name, connecting to the database only for online commands
func (e *env) run(name string, args []string) error {
	cmd, ok := lookup(name)
	if !ok {
		return fmt.Errorf("%w %q", errUnknownCommand, name)
	}
	if len(args) < cmd.nargs {
		return fmt.Errorf("usage: migrate %s %s", cmd.name, cmd.usage)
	}
	if cmd.offline {
		return cmd.run(e, nil, args)
	}

	m, closeFn, err := e.open()
	if err != nil {
		return err
	}
	defer closeFn()
	return cmd.run(e, m, args)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, "School records schema migrations\n\nUsage:\n  migrate [-path dir] [-log-level level] <command> [args]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s %s\t%s\n", c.name, c.usage, c.summary)
	}
	_ = tw.Flush()
	fmt.Fprint(w, "\nThe database is read from SCHOOL_DATABASE_* variables or config.yaml.\n")
}
