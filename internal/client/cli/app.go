package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/crmkeeper/internal/client/config"
	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/client/records"
	"github.com/dmitrijs2005/crmkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/crmkeeper/internal/client/services"
	"github.com/dmitrijs2005/crmkeeper/internal/client/storage"
	"github.com/dmitrijs2005/crmkeeper/internal/common"
	"github.com/dmitrijs2005/crmkeeper/internal/logging"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	book        *records.Book
	forms       map[models.Kind]recordForm
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	now         func() time.Time
	db          *sql.DB
}

// NewApp opens the local store described by c and restores the persisted
// session. Diagnostics go to stderr; user-facing output to stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	as := services.NewAuthService(ctx, metadata.NewSQLiteRepository(db), log)

	a := newApp(as, records.NewBook(log), log, bufio.NewReader(os.Stdin), os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(as services.AuthService, book *records.Book, log logging.Logger, r *bufio.Reader, out io.Writer) *App {
	a := &App{
		authService: as,
		book:        book,
		log:         log,
		reader:      r,
		out:         out,
		now:         time.Now,
	}
	a.forms = newForms(book)
	return a
}

// Run starts the REPL and releases the database when it returns.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			if err := a.db.Close(); err != nil {
				a.log.Warn(ctx, "error closing database", "error", err)
			}
		}
	}()

	a.println("Welcome to crmkeeper (type 'help' for commands)")
	if u := a.authService.Current(); u != nil {
		a.printf("Welcome back, %s!\n", u.FullName())
	}
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.authService.Current() != nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return common.ErrNotLoggedIn
	}
	return nil
}

func (a *App) getStatus() string {
	if u := a.authService.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
