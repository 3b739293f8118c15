// Package cli implements the interactive GRADiEnt terminal client: a REPL
// over the session and the typed API services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/config"
	"github.com/gradient-edu/gradient-cli/internal/client/services"
	"github.com/gradient-edu/gradient-cli/internal/client/session"
	"github.com/gradient-edu/gradient-cli/internal/client/tokenstore"
	"github.com/gradient-edu/gradient-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires configuration, the local database, the API client and the
// services into the interactive command surface.
type App struct {
	config  *config.Config
	db      *sql.DB
	session *session.Session

	courses     *services.CourseService
	assignments *services.AssignmentService
	submissions *services.SubmissionService
	chat        *services.ChatService
	search      *services.SearchService

	reader *bufio.Reader
	log    logging.Logger
}

// NewApp builds a fully wired App from the given config.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewConsoleLogger(os.Stderr)

	db, err := tokenstore.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "err", err)
		return nil, err
	}

	app := &App{
		config: c,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		log:    log,
	}

	store := tokenstore.NewSQLite(db)
	client := api.New(c.APIBaseURL, store,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
		api.WithSessionExpiredHook(app.sessionExpired),
	)

	app.session = session.New(services.NewAuthService(client), store, log)
	app.courses = services.NewCourseService(client)
	app.assignments = services.NewAssignmentService(client)
	app.submissions = services.NewSubmissionService(client)
	app.chat = services.NewChatService(client)
	app.search = services.NewSearchService(client)

	return app, nil
}

// Run resolves any stored session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Init(ctx)
	a.Root(ctx)
}

// Close releases the local database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// sessionExpired runs after a failed token refresh: the HTTP layer has
// already cleared the token, so just drop the published user and tell the
// human at the keyboard.
func (a *App) sessionExpired() {
	a.session.HandleSessionExpired()
	fmt.Println("Session expired, please log in again.")
}
