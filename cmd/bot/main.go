package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/sstlounge/contest-bot/internal/clist"
	"github.com/sstlounge/contest-bot/internal/config"
	"github.com/sstlounge/contest-bot/internal/database"
	"github.com/sstlounge/contest-bot/internal/domain/service"
	"github.com/sstlounge/contest-bot/internal/handlers"
	"github.com/sstlounge/contest-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	if err := session.Open(); err != nil {
		log.Fatalf("Failed to connect to Discord: %v", err)
	}
	defer session.Close()
	log.Printf("Connected to Discord as %s", session.State.User.Username)

	dm := database.NewInstance(db)
	source := clist.New(cfg.ClistUsername, cfg.ClistAPIKey)
	notifier := handlers.NewNotifier(session)

	services := service.NewInstance(dm, source, notifier)

	services.Refresher.Start()
	defer services.Refresher.Stop()

	services.Announcer.Start()
	defer services.Announcer.Stop()

	handler := handlers.New(session, services.Contest, services.Refresher)
	if err := handler.Register(); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}
	log.Println("Slash commands registered")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
