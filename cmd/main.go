package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusconnect/campus_api/config"
	"github.com/campusconnect/campus_api/internal/db"
	deps "github.com/campusconnect/campus_api/internal/debs"
	api "github.com/campusconnect/campus_api/internal/http/rest"
	"github.com/campusconnect/campus_api/internal/store"
	"github.com/campusconnect/campus_api/internal/store/memory"
	"github.com/campusconnect/campus_api/internal/store/postgres"
)

const allowConnectionsAfterShutdown = 1 * time.Second

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	dataStore, database := openStore(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		Store:  dataStore,
	}

	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if database != nil {
		database.Close()
		log.Println("Database connections closed.")
	}

	log.Fatal(a.Shutdown())
}

// openStore picks the persistence strategy once at startup. Postgres is
// preferred; when it is unreachable (or STORAGE_MODE=memory) the server
// runs on the seeded in-memory store so it stays usable without a
// database. The returned *db.DB is nil in memory mode.
func openStore(cfg *config.Config) (store.Store, *db.DB) {
	if cfg.StorageMode == "memory" {
		log.Println("[Store]: STORAGE_MODE=memory, using seeded in-memory store")
		return memory.NewSeeded(), nil
	}

	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Printf("[Store]: database unreachable (%v), falling back to seeded in-memory store", err)
		return memory.NewSeeded(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.Migrate(ctx); err != nil {
		log.Printf("[Store]: migration failed (%v), falling back to seeded in-memory store", err)
		database.Close()
		return memory.NewSeeded(), nil
	}

	log.Println("[Store]: connected to postgres")
	return postgres.New(database), database
}
