// Package cli holds the dependencies shared by the dockyard commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// DB opens the layout database on first use, so commands that never
	// touch layouts do not create it.
	DB      *sqlite.LazyDB
	Layouts *usecase.ManageLayoutsUseCase

	ctx context.Context
}

// NewApp loads the configuration and wires the layout store.
func NewApp(ctx context.Context) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	// Commands print to the terminal; only warnings reach stderr unless
	// DOCKYARD_LOG_LEVEL asks for more.
	level := "warn"
	if envLevel := os.Getenv("DOCKYARD_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})
	ctx = logging.WithContext(ctx, logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("layout store configured")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		DB:      db,
		Layouts: usecase.NewManageLayoutsUseCase(sqlite.NewLazyLayoutRepository(db)),
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
