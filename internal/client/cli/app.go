package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/minseo-k/fridgekeeper/internal/client/api"
	"github.com/minseo-k/fridgekeeper/internal/client/config"
	"github.com/minseo-k/fridgekeeper/internal/client/models"
	"github.com/minseo-k/fridgekeeper/internal/client/repositories/localstore"
	"github.com/minseo-k/fridgekeeper/internal/client/services"
	"github.com/minseo-k/fridgekeeper/internal/client/session"
	"github.com/minseo-k/fridgekeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionController is the session surface the CLI drives. The concrete
// *session.Controller satisfies it; tests provide a stub.
type sessionController interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, loginID, password string) error
	Signup(ctx context.Context, loginID, username, password1, password2 string) error
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, patch models.UserPatch) error
	DeleteAccount(ctx context.Context, password string) error
	CurrentUser() *models.User
	IsAuthenticated() bool
}

type inventoryService interface {
	List(ctx context.Context) ([]models.Item, error)
	DeleteItems(ctx context.Context, ids []int64) error
}

type App struct {
	config    *config.Config
	session   sessionController
	inventory inventoryService
	log       logging.Logger
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localstore.InitDatabase(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	sess := session.NewController(apiClient, db, log)
	inv := services.NewInventoryService(apiClient, sess)

	return &App{
		config:    cfg,
		session:   sess,
		inventory: inv,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the cached session and hands control to the REPL. It blocks
// until the user exits.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}
	a.root(ctx)
}
