package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/checkout"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/handlers"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/notify"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/routes"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/seed"
	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/store"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Policy Configuration ---
	// Threshold and fee rate are policy, not structure: they default to the
	// house values but can be overridden per deployment.
	cfg := store.Config{
		Thresholds: notify.DefaultThresholds,
		Pricing:    checkout.DefaultPricing,
	}
	if v := os.Getenv("LOW_STOCK_THRESHOLD"); v != "" {
		threshold, err := strconv.Atoi(v)
		if err != nil || threshold <= 0 {
			log.Fatalf("Invalid LOW_STOCK_THRESHOLD %q", v)
		}
		cfg.Thresholds = notify.Thresholds{Low: threshold}
	}
	if v := os.Getenv("SERVICE_FEE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			log.Fatalf("Invalid SERVICE_FEE_RATE %q", v)
		}
		cfg.Pricing = checkout.Pricing{ServiceFeeRate: rate}
	}

	// 2. --- Seed Data ---
	data, err := seed.Load(os.Getenv("SEED_FILE"))
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	log.Printf("Seed loaded: %d items, %d clients, %d open orders",
		len(data.Inventory), len(data.Clients), len(data.KitchenOrders))

	// 3. --- State Store ---
	st := store.New(store.RestaurantState{
		Inventory:     data.Inventory,
		KitchenOrders: data.KitchenOrders,
		Clients:       data.Clients,
		SalesHistory:  data.SalesHistory,
	}, cfg)

	app := &handlers.Handlers{Store: st}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Elite Gastro floor API on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
