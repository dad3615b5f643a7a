package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"booklist/internal/auth"
	"booklist/internal/book"
	"booklist/internal/httpx"
	"booklist/internal/review"
	"booklist/internal/storage"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	jwtSecret := mustGetEnv("JWT_SECRET")

	store, closeStore := mustOpenStore()
	defer closeStore()

	loginLimiter := httpx.NewRateLimitMiddleware(
		getEnvFloat("LOGIN_RPS", 5),
		getEnvInt("LOGIN_BURST", 10),
	)
	router := newRouter(store, jwtSecret, loginLimiter)

	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	handler := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(
				httpx.SecurityHeadersMiddleware(
					httpx.CORSMiddleware(corsOrigins)(
						httpx.RequestSizeLimitMiddleware(1<<20)(router))))))

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// newRouter registers every API route on a fresh mux. The privileged
// review routes sit behind the auth guard; login goes through the rate
// limiter.
func newRouter(store storage.Store, jwtSecret string, loginLimiter *httpx.RateLimitMiddleware) *http.ServeMux {
	bookService := book.NewService(store)
	authService := auth.NewService(jwtSecret, store)
	reviewService := review.NewService(store, bookService)

	bookHandler := book.NewHTTPHandler(bookService)
	authHandler := auth.NewHTTPHandler(authService)
	reviewHandler := review.NewHTTPHandler(reviewService)

	requireAuth := httpx.AuthMiddleware(auth.Verifier(jwtSecret))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /api/books", bookHandler.List)
	router.HandleFunc("GET /api/books/isbn/{isbn}", bookHandler.GetByISBN)
	router.HandleFunc("GET /api/books/author/{author}", bookHandler.ListByAuthor)
	router.HandleFunc("GET /api/books/title/{title}", bookHandler.ListByTitle)
	router.HandleFunc("GET /api/reviews/{isbn}", reviewHandler.ListByISBN)

	router.HandleFunc("POST /api/register", authHandler.Register)
	router.Handle("POST /api/login", loginLimiter.Middleware(http.HandlerFunc(authHandler.Login)))

	router.Handle("POST /api/reviews", requireAuth(http.HandlerFunc(reviewHandler.Upsert)))
	router.Handle("DELETE /api/reviews/{isbn}", requireAuth(http.HandlerFunc(reviewHandler.Delete)))

	return router
}

// mustOpenStore picks the persistence backend from STORE_DRIVER:
// "file" (default), "memory", or "postgres".
func mustOpenStore() (storage.Store, func()) {
	switch driver := getEnv("STORE_DRIVER", "file"); driver {
	case "file":
		dataDir := getEnv("DATA_DIR", "data")
		store, err := storage.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("cannot open file store in %s: %v", dataDir, err)
		}
		log.Printf("file store ready in %s", dataDir)
		return store, func() {}
	case "memory":
		return storage.NewMemoryStore(), func() {}
	case "postgres":
		pool := mustOpenDB(mustGetEnv("DB_DSN"))
		store, err := storage.NewPostgresStore(context.Background(), pool)
		if err != nil {
			pool.Close()
			log.Fatalf("cannot open postgres store: %v", err)
		}
		return store, pool.Close
	default:
		log.Fatalf("unknown STORE_DRIVER: %s (want file, memory, or postgres)", driver)
		return nil, nil
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("missing required environment variable: %s", key)
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
