package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/Kisalay21/familytree/internal/client/client"
	"github.com/Kisalay21/familytree/internal/client/config"
	"github.com/Kisalay21/familytree/internal/client/media"
	"github.com/Kisalay21/familytree/internal/client/migrate"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/client/stores/activity"
	"github.com/Kisalay21/familytree/internal/client/stores/chat"
	"github.com/Kisalay21/familytree/internal/client/stores/feed"
	"github.com/Kisalay21/familytree/internal/client/stores/profile"
	"github.com/Kisalay21/familytree/internal/client/stores/vault"
	"github.com/Kisalay21/familytree/internal/client/syncer"
	"github.com/Kisalay21/familytree/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	adapter storage.Adapter
	api     *client.GRPCClient

	profiles   *profile.Store
	vault      *vault.Store
	feed       *feed.Store
	chat       *chat.Store
	activities *activity.Store
	engine     *syncer.Engine
	processor  *media.Processor

	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DBFileName)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	apiClient, err := client.NewFamilyFeedClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	adapter := storage.NewSQLiteAdapter(db, logger, c.QuotaBytes)

	profiles := profile.New(adapter, logger, migrate.DefaultBirthdate)
	vaultStore := vault.New(adapter, logger)
	feedStore := feed.New(apiClient, adapter, logger)
	chatStore := chat.New(adapter, logger)
	activities := activity.New(adapter, logger)

	return &App{
		config:     c,
		logger:     logger.With("module", "cli"),
		db:         db,
		adapter:    adapter,
		api:        apiClient,
		profiles:   profiles,
		vault:      vaultStore,
		feed:       feedStore,
		chat:       chatStore,
		activities: activities,
		engine:     syncer.New(profiles, vaultStore, feedStore, activities, logger),
		processor:  media.NewProcessor(logger),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Close() {
	a.feed.Stop()
	_ = a.api.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.profiles.IsAuthenticated(context.Background())
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher pings the feed server every interval and flips
// the mode between online and offline accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
