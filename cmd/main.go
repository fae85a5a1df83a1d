package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/petshop/checkout-service/internal/app"
	"github.com/petshop/checkout-service/internal/config"
	"github.com/petshop/checkout-service/internal/events"
	"github.com/petshop/checkout-service/internal/handler"
	"github.com/petshop/checkout-service/internal/postgres"
	"github.com/petshop/checkout-service/internal/repo"
	"github.com/petshop/checkout-service/internal/service"
	"github.com/petshop/checkout-service/pkg/cache"
	"github.com/petshop/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	addressRepo := repo.NewAddressRepo(db)
	saleRepo := repo.NewSaleRepo(db)

	txManager := trm.NewManager(db)
	saleCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewPublisher(logger, conf.Kafka)

	cartService := service.NewCartService(logger, txManager, cartRepo, productRepo)
	orderService := service.NewOrderService(logger, txManager, cartRepo, productRepo, addressRepo, saleRepo, publisher, saleCache)
	saleService := service.NewSaleService(logger, txManager, saleRepo, productRepo, publisher, saleCache)
	addressService := service.NewAddressService(logger, txManager, addressRepo)

	httpHandler := handler.NewHTTPHandler(logger, cartService, orderService, saleService, addressService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(saleCache)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
