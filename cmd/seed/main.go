// Command seed force-writes the fixed five-book catalog into the
// configured store, replacing whatever books document is there. Users
// and reviews are left untouched.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"booklist/internal/storage"
)

func main() {
	_ = godotenv.Load(".env.local")
	ctx := context.Background()

	store, closeStore := openStore(ctx)
	defer closeStore()

	if err := storage.Seed(ctx, store); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("catalog seeded")
}

func openStore(ctx context.Context) (storage.Store, func()) {
	switch driver := getEnv("STORE_DRIVER", "file"); driver {
	case "file":
		dataDir := getEnv("DATA_DIR", "data")
		store, err := storage.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("cannot open file store in %s: %v", dataDir, err)
		}
		return store, func() {}
	case "postgres":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			log.Fatal("DB_DSN is required for the postgres store")
		}
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			log.Fatalf("cannot create db pool: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			log.Fatalf("cannot ping database: %v", err)
		}
		store, err := storage.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			log.Fatalf("cannot open postgres store: %v", err)
		}
		return store, pool.Close
	default:
		log.Fatalf("unknown STORE_DRIVER: %s (want file or postgres)", driver)
		return nil, nil
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
