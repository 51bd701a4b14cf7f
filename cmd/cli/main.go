package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/amirasaad/networth/infra"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/amirasaad/networth/pkg/service/auth"
	"github.com/amirasaad/networth/pkg/service/ledger"
	"github.com/amirasaad/networth/pkg/service/snapshot"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  login                  verify credentials and print a token
  summary  -email <e>    print totals and net worth
  snapshot -email <e>    record today's snapshot`

var errUsage = errors.New(usage)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err) //nolint:errcheck
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errUsage
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := infra.NewDBConnection(cfg.DB, "cli")
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c := newCLI(infra.NewUoW(db), cfg.Auth.Jwt, slog.Default())
	return c.run(ctx, args)
}

// cli runs one command against the database. Every command verifies the
// password before touching data.
type cli struct {
	out          io.Writer
	in           *bufio.Reader
	readPassword func() (string, error)
	basic        *auth.Service
	tokens       *auth.Service
	ledger       *ledger.Service
	snapshots    *snapshot.Service
}

func newCLI(uow repository.UnitOfWork, jwt *config.Jwt, logger *slog.Logger) *cli {
	c := &cli{
		out:          os.Stdout,
		in:           bufio.NewReader(os.Stdin),
		readPassword: readTerminalPassword,
		basic:        auth.NewWithBasic(uow, logger),
		ledger:       ledger.New(uow, nil, logger),
		snapshots:    snapshot.New(uow, nil, logger),
	}
	if jwt != nil && jwt.Secret != "" {
		c.tokens = auth.NewWithJWT(uow, jwt, logger)
	}
	return c
}

func readTerminalPassword() (string, error) {
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	return string(b), err
}

func (c *cli) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "login":
		return c.login(ctx)
	case "summary":
		return c.withSession(ctx, "summary", args[1:], c.summary)
	case "snapshot":
		return c.withSession(ctx, "snapshot", args[1:], c.snapshot)
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func (c *cli) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label) //nolint:errcheck
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *cli) authenticate(ctx context.Context, svc *auth.Service, email string) (*dto.UserRead, error) {
	fmt.Fprint(c.out, "Password: ") //nolint:errcheck
	password, err := c.readPassword()
	fmt.Fprintln(c.out) //nolint:errcheck
	if err != nil {
		return nil, err
	}
	return svc.Login(ctx, email, password)
}

func (c *cli) login(ctx context.Context) error {
	email, err := c.prompt("Email: ")
	if err != nil {
		return err
	}
	svc := c.tokens
	if svc == nil {
		svc = c.basic
	}
	u, err := c.authenticate(ctx, svc, email)
	if err != nil {
		return err
	}
	token, err := svc.GenerateToken(ctx, u)
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(c.out, "Signed in as %s\n", u.Email) //nolint:errcheck
	if token != "" {
		fmt.Fprintln(c.out, token) //nolint:errcheck
	}
	return nil
}

func (c *cli) withSession(
	ctx context.Context,
	name string,
	args []string,
	next func(context.Context, session.Session) error,
) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil || *email == "" {
		return errUsage
	}
	u, err := c.authenticate(ctx, c.basic, *email)
	if err != nil {
		return err
	}
	sess, err := session.New(u.ID, u.Email)
	if err != nil {
		return err
	}
	return next(ctx, sess)
}

func (c *cli) summary(ctx context.Context, sess session.Session) error {
	book, err := c.ledger.Open(ctx, sess)
	if err != nil {
		return err
	}
	totals := book.Totals()
	fmt.Fprintf(c.out, "Assets:      %s\n", totals.TotalAssets.StringFixed(2))      //nolint:errcheck
	fmt.Fprintf(c.out, "Liabilities: %s\n", totals.TotalLiabilities.StringFixed(2)) //nolint:errcheck
	worth := color.New(color.FgGreen)
	if totals.NetWorth.IsNegative() {
		worth = color.New(color.FgRed)
	}
	worth.Fprintf(c.out, "Net worth:   %s\n", totals.NetWorth.StringFixed(2)) //nolint:errcheck
	return nil
}

func (c *cli) snapshot(ctx context.Context, sess session.Session) error {
	book, err := c.ledger.Open(ctx, sess)
	if err != nil {
		return err
	}
	rec, err := c.snapshots.Open(ctx, sess)
	if err != nil {
		return err
	}
	snap, err := rec.TakeSnapshot(ctx, book.Ledger())
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(c.out, "Snapshot %s recorded: net worth %s\n", //nolint:errcheck
		snap.Date.Format("2006-01-02"), snap.NetWorth.StringFixed(2))
	return nil
}
