package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	apihttp "dates-shop-backend/internal/http"
	"dates-shop-backend/internal/http/handlers"
	"dates-shop-backend/internal/repo"
	"dates-shop-backend/internal/service"
	"dates-shop-backend/pkg/cache"
	"dates-shop-backend/pkg/config"
	"dates-shop-backend/pkg/logger"
	"dates-shop-backend/pkg/rabbit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.Common.ServiceName, cfg.Common.LogLevel)

	// Postgres
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect failed")
	}
	defer db.Close()

	if err := repo.InitSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("schema init failed")
	}

	usersRepo := &repo.UsersPG{DB: db}
	productsRepo := &repo.ProductsPG{DB: db}
	cartRepo := &repo.CartPG{DB: db}
	ordersRepo := &repo.OrdersPG{DB: db}

	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authSvc := &service.AuthService{
		Users:    usersRepo,
		Secret:   []byte(cfg.Auth.JWTSecret),
		TokenTTL: tokenTTL,
	}
	ordersSvc := &service.OrdersService{Store: ordersRepo, Log: log}

	var (
		productAdder  handlers.ProductAdder  = productsRepo
		productLister handlers.ProductLister = productsRepo
	)
	if cfg.Redis.Addr != "" {
		rds := cache.New(cfg.Redis.Addr)
		if err := rds.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, products cache disabled")
		} else {
			defer rds.Close()
			cached := &repo.ProductsCached{PG: productsRepo, Redis: rds, TTL: time.Minute}
			productAdder = cached
			productLister = cached
			ordersSvc.Cache = cached
			log.Info().Str("addr", cfg.Redis.Addr).Msg("products cache enabled")
		}
	}

	if cfg.Rabbit.URL != "" {
		rc, err := rabbit.Connect(cfg.Rabbit.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbit connect failed")
		}
		defer rc.Close()
		if err := rc.DeclareExchange("orders"); err != nil {
			log.Fatal().Err(err).Msg("declare exchange failed")
		}
		ordersSvc.Publisher = rabbit.NewPublisher(rc.Ch, "orders")
		log.Info().Msg("order event publishing enabled")
	}

	register := &handlers.RegisterHandler{Auth: authSvc, Log: log}
	login := &handlers.LoginHandler{Auth: authSvc, TokenTTL: tokenTTL, Log: log}
	addProduct := &handlers.AddProductHandler{Products: productAdder, Log: log}
	listProducts := &handlers.ListProductsHandler{Products: productLister, Log: log}
	addToCart := &handlers.AddToCartHandler{Cart: cartRepo, Log: log}
	getCart := &handlers.GetCartHandler{Cart: cartRepo, Log: log}
	placeOrder := &handlers.PlaceOrderHandler{Orders: ordersSvc, Log: log}

	router := apihttp.NewRouter(&apihttp.Handlers{
		Health:       handlers.Health,
		Register:     register.ServeHTTP,
		Login:        login.ServeHTTP,
		AddProduct:   addProduct.ServeHTTP,
		ListProducts: listProducts.ServeHTTP,
		AddToCart:    addToCart.ServeHTTP,
		GetCart:      getCart.ServeHTTP,
		PlaceOrder:   placeOrder.ServeHTTP,
	}, apihttp.Auth(authSvc), cfg.Common.ServiceName)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// run server
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
