package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/slack-reservation-bot/internal/config"
	"github.com/diegoclair/slack-reservation-bot/internal/database"
	"github.com/diegoclair/slack-reservation-bot/internal/domain"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/service"
	"github.com/diegoclair/slack-reservation-bot/internal/filestore"
	"github.com/diegoclair/slack-reservation-bot/internal/handlers"
	"github.com/diegoclair/slack-reservation-bot/internal/scheduler"
	"github.com/diegoclair/slack-reservation-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	dm, closeStore, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeStore()

	api := slack.New(cfg.SlackBotToken, slack.OptionAppLevelToken(cfg.SlackAppToken))

	reserveChannelID, err := findChannelID(api, cfg.ReserveChannel)
	if err != nil {
		log.Fatalf("Failed to resolve reserve channel %q: %v", cfg.ReserveChannel, err)
	}
	postChannelID, err := findChannelID(api, cfg.PostChannel)
	if err != nil {
		log.Fatalf("Failed to resolve post channel %q: %v", cfg.PostChannel, err)
	}

	sched := scheduler.New()
	services := service.NewInstance(dm, api, sched, postChannelID)

	if cfg.BootstrapAdmin != "" {
		if err := services.Reservation.SeedAdmin(cfg.BootstrapAdmin); err != nil {
			log.Fatalf("Failed to seed bootstrap admin: %v", err)
		}
	}

	if err := services.Announcement.SyncSchedules(); err != nil {
		log.Fatalf("Failed to sync announcement schedules: %v", err)
	}

	if cfg.RetentionDays > 0 {
		retention := cfg.RetentionDays
		err := sched.Schedule(cfg.CleanupCron, func() {
			cutoff := time.Now().AddDate(0, 0, -retention)
			purged, err := services.Reservation.PurgeOlderThan(cutoff)
			if err != nil {
				log.Printf("Retention purge failed: %v", err)
				return
			}
			log.Printf("Retention purge removed %d reservations older than %s", purged, cutoff.Format(domain.DateLayout))
		})
		if err != nil {
			log.Fatalf("Failed to schedule retention purge: %v", err)
		}
	}

	sched.Start()
	defer sched.Stop()

	handler := handlers.New(api, services.Reservation, services.Announcement,
		cfg.CommandPrefix, reserveChannelID, cfg.BootstrapAdmin)

	socketClient := socketmode.New(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handler.Run(ctx, socketClient)
	go func() {
		if err := socketClient.RunContext(ctx); err != nil && ctx.Err() == nil {
			log.Fatalf("Socket mode client stopped: %v", err)
		}
	}()

	if _, _, err := api.PostMessage(reserveChannelID,
		slack.MsgOptionText("Reservation bot has started. I will listen for requests in this channel.", false)); err != nil {
		log.Printf("Failed to post startup message: %v", err)
	}
	log.Printf("Reservation bot is running, listening in #%s with prefix %q", cfg.ReserveChannel, cfg.CommandPrefix)

	<-handler.ShutdownRequested()
	log.Println("Shutdown requested by admin, exiting")
}

func openStorage(cfg *config.Config) (contract.DataManager, func() error, error) {
	switch cfg.StorageDriver {
	case domain.StorageDriverFile:
		store, err := filestore.Open(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case domain.StorageDriverSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		log.Println("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Println("Migrations completed successfully")
		return database.NewInstance(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func findChannelID(api *slack.Client, name string) (string, error) {
	params := &slack.GetConversationsParameters{
		ExcludeArchived: true,
		Types:           []string{"public_channel", "private_channel"},
		Limit:           200,
	}

	for {
		channels, cursor, err := api.GetConversations(params)
		if err != nil {
			return "", fmt.Errorf("failed to list conversations: %w", err)
		}
		for _, channel := range channels {
			if channel.Name == name {
				return channel.ID, nil
			}
		}
		if cursor == "" {
			return "", fmt.Errorf("channel %q not found", name)
		}
		params.Cursor = cursor
	}
}
