// swipeshop is a swipe-to-shop session service: it fronts an external
// recommendation backend with a card-deck browsing session, a quota-capped
// cart, and a simulated checkout.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fashionswipe/swipeshop/internal/api"
	"github.com/fashionswipe/swipeshop/internal/browse"
	"github.com/fashionswipe/swipeshop/internal/catalog"
	"github.com/fashionswipe/swipeshop/internal/checkout"
	"github.com/fashionswipe/swipeshop/internal/config"
	"github.com/fashionswipe/swipeshop/internal/core"
	"github.com/fashionswipe/swipeshop/internal/session"
	"github.com/fashionswipe/swipeshop/internal/store"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	flags := core.ParseFlags("swipeshop")
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if flags.Port == 0 {
		flags.Port = cfg.Port
	}

	srv := core.New(flags)

	client := catalog.NewClient(cfg.Recommender.BaseURL, cfg.Recommender.Timeout.Std(), srv.Logger)
	registry := session.NewRegistry()
	orders := store.New[checkout.Order]("order")
	flow := checkout.NewFlow(checkout.NewSimulator(cfg.Checkout.ProcessingDelay.Std()), orders)
	controller := browse.NewController(client, srv.Logger)

	handler := api.NewHandler(registry, controller, client, flow, srv.Logger, srv.Middleware())
	handler.Routes(srv.Router)

	srv.Logger.Info("swipeshop ready",
		"port", flags.Port,
		"recommender", cfg.Recommender.BaseURL,
		"swipe_limit", session.SwipeLimit,
	)

	if err := srv.Serve(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
