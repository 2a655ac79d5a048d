package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet_api/internal/config"
	"fleet_api/internal/logger"
	"fleet_api/internal/routes"
	"fleet_api/internal/simulator"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Load configuration; refuses to start without DB credentials and
	// the JWT secret.
	config.MustLoadEnv()

	// Connect to the database
	db := config.InitDB()

	// Background position simulator, stopped on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sim := simulator.New(db, 10*time.Second, rand.New(rand.NewSource(time.Now().UnixNano())))
	go sim.Run(ctx)

	// Setup Gin router
	r := routes.SetupRouter(db)

	log.Println("🚀 Server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", r))
}
