package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/paybook/internal/config"
	"github.com/dmitrijs2005/paybook/internal/logging"
	"github.com/dmitrijs2005/paybook/internal/services"
	"github.com/dmitrijs2005/paybook/internal/session"
	"github.com/dmitrijs2005/paybook/internal/storage"
)

type App struct {
	config   *config.Config
	accounts services.AccountDirectory
	records  services.RecordStore
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
	closeFn  func() error
}

// NewApp opens the local database named by c and builds the services on
// top of it. Call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	secret, err := session.ResolveSecret(ctx, db.KV, c.SessionSecret)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	records, err := services.NewRecordStore(ctx, db.KV, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	accounts := services.NewAccountDirectory(db.KV, session.NewManager(secret, c.SessionTTL), log)

	return &App{
		config:   c,
		accounts: accounts,
		records:  records,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
		closeFn:  db.Close,
	}, nil
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

// Run restores a saved session and then serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	if u, ok, err := a.accounts.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	} else if ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Username)
	}

	fmt.Fprintln(a.out, "Welcome to paybook (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.accounts.Current()
	return ok
}

func (a *App) getStatus() string {
	u, ok := a.accounts.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s) ", u.Username)
}
