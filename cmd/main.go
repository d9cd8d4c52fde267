package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	discordclient "wordwatch/clients/discord"
	"wordwatch/config"
	"wordwatch/db"
	"wordwatch/handlers"
	"wordwatch/services/profiles"
	"wordwatch/services/watches"
	"wordwatch/usecases/watch"
	"wordwatch/utils"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	watchesRepo := db.NewPostgresWatchesRepository(dbConn, cfg.DatabaseSchema)
	profilesRepo := db.NewPostgresProfilesRepository(dbConn, cfg.DatabaseSchema)

	watchesService := watches.NewWatchesService(watchesRepo, utils.TokenizeMessage)
	profilesService := profiles.NewProfilesService(profilesRepo)

	// One Discord session serves both the gateway handler and the
	// dispatch client
	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}

	discordClient := discordclient.NewDiscordClient(session)
	watchUseCase := watch.NewWatchUseCase(discordClient, watchesService, profilesService)

	eventsHandler := handlers.NewDiscordEventsHandler(session, watchUseCase, cfg.DiscordConfig.CommandPrefix)
	if err := eventsHandler.StartBot(); err != nil {
		return err
	}
	defer eventsHandler.StopBot()

	// Create a new router
	router := mux.NewRouter()

	watchesHTTPHandler := handlers.NewWatchesHTTPHandler(watchesService)
	watchesHTTPHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler.Handler(router),
	}

	go func() {
		log.Printf("🚀 HTTP server listening on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Failed to shut down HTTP server cleanly: %v", err)
	}

	return nil
}
