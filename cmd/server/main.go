package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/liondance/show-manager/internal/config"
	"github.com/liondance/show-manager/internal/database"
	"github.com/liondance/show-manager/internal/domain/service"
	"github.com/liondance/show-manager/internal/handlers"
	"github.com/liondance/show-manager/internal/slackboss"
	"github.com/liondance/show-manager/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logrus.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}
	logrus.Info("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)
	boss := slackboss.New(slackClient)

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, boss)

	handler := handlers.New(services.Show, services.Member, services.Contact)
	mux := http.NewServeMux()
	handler.Register(mux)

	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
