package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/gdugdh24/heartline-backend/internal/usecase/bootstrap"
)

const usage = `usage: bootstrap <command> [flags]

commands:
  migrate       create users, preferences, matches, messages and profiles tables
  insert-user   insert one user
  list-users    print every user as JSON`

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Service is the subset of the bootstrap use case driven by the CLI.
type Service interface {
	CreateTables(ctx context.Context) error
	CreateProfilesTable(ctx context.Context) error
	InsertUser(ctx context.Context, in bootstrap.InsertUserInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// command is a parsed command line, ready to run against a Service.
type command struct {
	name   string
	insert bootstrap.InsertUserInput
}

// execute parses args, connects and runs the command, reporting failures on
// stderr. It returns the process exit code. connect is only called once the
// command line is known to be valid.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, connect func() (Service, func(), error)) int {
	cmd, err := parseCommand(args)
	if errors.Is(err, flag.ErrHelp) {
		writeUsage(stdout, cmd.name)
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "bootstrap: %v\n\n", err)
		writeUsage(stderr, cmd.name)
		return exitUsage
	}

	svc, closeFn, err := connect()
	if err != nil {
		fmt.Fprintf(stderr, "bootstrap: %v\n", err)
		return exitError
	}
	defer closeFn()

	if err := cmd.run(ctx, svc, stdout); err != nil {
		fmt.Fprintf(stderr, "bootstrap %s: %v\n", cmd.name, err)
		return exitError
	}
	return exitOK
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errors.New("missing command")
	}

	cmd := command{name: args[0]}
	switch cmd.name {
	case "-h", "-help", "--help", "help":
		return command{}, flag.ErrHelp
	case "migrate", "list-users":
		if len(args) > 1 {
			return cmd, fmt.Errorf("%s takes no arguments, got %q", cmd.name, args[1:])
		}
		return cmd, nil
	case "insert-user":
		in, err := parseInsertUser(args[1:])
		cmd.insert = in
		return cmd, err
	default:
		return command{}, fmt.Errorf("unknown command %q", cmd.name)
	}
}

func (c command) run(ctx context.Context, svc Service, out io.Writer) error {
	switch c.name {
	case "migrate":
		if err := svc.CreateTables(ctx); err != nil {
			return err
		}
		return svc.CreateProfilesTable(ctx)
	case "insert-user":
		user, err := svc.InsertUser(ctx, c.insert)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "inserted user %d\n", user.ID)
		return err
	case "list-users":
		users, err := svc.ListUsers(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	default:
		return fmt.Errorf("unknown command %q", c.name)
	}
}

func insertUserFlags(in *bootstrap.InsertUserInput, bio, picture *string) *flag.FlagSet {
	fs := flag.NewFlagSet("insert-user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&in.Name, "name", "", "user name")
	fs.StringVar(&in.Email, "email", "", "unique email")
	fs.StringVar(&in.Password, "password", "", "plain text password, stored hashed")
	fs.StringVar(&in.Gender, "gender", "", "gender")
	fs.IntVar(&in.Age, "age", -1, "age in years")
	fs.StringVar(bio, "bio", "", "optional bio")
	fs.StringVar(picture, "picture", "", "optional profile picture URL")
	return fs
}

func parseInsertUser(args []string) (bootstrap.InsertUserInput, error) {
	var in bootstrap.InsertUserInput
	var bio, picture string

	fs := insertUserFlags(&in, &bio, &picture)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return in, err
		}
		return in, fmt.Errorf("insert-user: %w", err)
	}
	if fs.NArg() > 0 {
		return in, fmt.Errorf("insert-user: unexpected arguments %q", fs.Args())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bio":
			in.Bio = &bio
		case "picture":
			in.ProfilePicture = &picture
		}
	})
	return in, nil
}

// writeUsage prints the command list, followed by the flags of name when it
// has any.
func writeUsage(w io.Writer, name string) {
	fmt.Fprintln(w, usage)
	if name != "insert-user" {
		return
	}

	var in bootstrap.InsertUserInput
	var bio, picture string
	fs := insertUserFlags(&in, &bio, &picture)
	fs.SetOutput(w)
	fmt.Fprintln(w, "\ninsert-user flags:")
	fs.PrintDefaults()
}
