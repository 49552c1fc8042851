// @title           Sklep API
// @version         1.0
// @description     E-commerce backend: accounts, products with image uploads, categories, transactions.
// @host            localhost
// @schemes         http https
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"sklep-api/internal/api"
	"sklep-api/internal/config"
	"sklep-api/internal/database"
	"sklep-api/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "sklep-api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DB.Source)
	if err != nil {
		log.Fatalf("Nieprawidłowy adres bazy danych: %v", err)
	}
	poolCfg.MaxConns = 64
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	dbpool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Nie można pingować bazy danych: %v", err)
	}
	log.Println("Pomyślnie połączono z bazą danych")

	s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3)
	if err != nil {
		log.Fatalf("Nie można zainicjować klienta S3: %v", err)
	}
	log.Printf("Obrazy produktów będą przechowywane w bucket: %s", cfg.S3.Bucket)

	store := database.NewStore(dbpool)
	server := api.NewServer(cfg, store, s3Storage)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("https://localhost/swagger/doc.json"),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Server is running"))
	})

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/login", server.LoginHandler)
	r.Post("/api/signup", server.SignupHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/me", server.GetCurrentAccountHandler)

		r.Get("/product", server.ListProductsHandler)
		r.Post("/product", server.CreateProductHandler)
		r.Get("/product/{productID}", server.GetProductHandler)
		r.Patch("/product/{productID}", server.UpdateProductHandler)
		r.Delete("/product/{productID}", server.DeleteProductHandler)

		r.Get("/category", server.ListCategoriesHandler)
		r.Post("/category", server.CreateCategoryHandler)
		r.Patch("/category/{categoryID}", server.UpdateCategoryHandler)
		r.Delete("/category/{categoryID}", server.DeleteCategoryHandler)

		r.Get("/transaction", server.ListTransactionsHandler)
		r.Post("/transaction", server.CreateTransactionHandler)
	})

	log.Printf("Uruchamianie serwera na %s", cfg.Server.Address)
	if err := http.ListenAndServe(cfg.Server.Address, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
