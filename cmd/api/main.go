package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"roombook/internal/config"
	"roombook/internal/database"
	"roombook/internal/server"
	"roombook/internal/store"
)

func main() {
	cfg := config.Load()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Env == "dev" {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rooms, users, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	srv := server.New(":"+cfg.Port, rooms, users, log)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}

// buildStores wires the room and user stores for the configured backend.
// The file layout only covers rooms, so the file backend keeps users in
// memory.
func buildStores(ctx context.Context, cfg *config.Config) (store.RoomStore, store.UserStore, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemoryRoomStore(), store.NewMemoryUserStore(), nil

	case "file":
		rooms, err := store.NewFileRoomStore(cfg.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return rooms, store.NewMemoryUserStore(), nil

	case "sql":
		db, err := database.Open(cfg.DBDriver, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store.NewSQLRoomStore(db), store.NewSQLUserStore(db), nil

	case "mongo":
		client, err := store.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		db := client.Database(cfg.MongoDB)
		users, err := store.NewMongoUserStore(ctx, db)
		if err != nil {
			return nil, nil, err
		}
		return store.NewMongoRoomStore(db), users, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Backend)
	}
}
