package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// signupCmd holds the flags for the 'signup' subcommand.
type signupCmd struct {
	email string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create an account and log in" }
func (*signupCmd) Usage() string {
	return `pts signup [-email <address>] <username> <password>

  Creates a local account and makes it the active session. Usernames are
  at least 3 characters of letters, digits and underscores, not starting
  with a digit, @ or _. Passwords are 6 to 12 characters.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Optional email address")
}

func (c *signupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <username> <password>")
		return subcommands.ExitUsageError
	}
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	account, err := desk.Signup(f.Arg(0), f.Arg(1), c.email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account created, logged in as %s\n", account.Username)
	return subcommands.ExitSuccess
}

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in to an existing account" }
func (*loginCmd) Usage() string {
	return `pts login <username> <password>

  Makes the account the active session.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected <username> <password>")
		return subcommands.ExitUsageError
	}
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	account, err := desk.Login(f.Arg(0), f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Logged in as %s\n", account.Username)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "clear the active session" }
func (*logoutCmd) Usage() string {
	return `pts logout
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := desk.Logout(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string     { return "whoami" }
func (*whoamiCmd) Synopsis() string { return "display the active session" }
func (*whoamiCmd) Usage() string {
	return `pts whoami
`
}

func (c *whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening desk: %v\n", err)
		return subcommands.ExitFailure
	}
	account, ok, err := desk.CurrentUser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		fmt.Println("Not logged in")
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s (since %s)\n", account.Username, account.CreatedAt.Format("2006-01-02"))
	return subcommands.ExitSuccess
}
