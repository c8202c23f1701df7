package main

import (
	"log"

	"restaurant-ops/cmd"
	"restaurant-ops/internal/data/repository"
	"restaurant-ops/internal/wire"
	"restaurant-ops/pkg/database"
	"restaurant-ops/pkg/messaging"
	"restaurant-ops/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// order events go nowhere when KAFKA_BROKERS is empty
	publisher := messaging.NewPublisher(config.Kafka.Brokers, config.Kafka.OrderTopic)
	defer publisher.Close()

	if len(config.Kafka.Brokers) > 0 {
		logger.Info("Publishing order events",
			zap.Strings("brokers", config.Kafka.Brokers),
			zap.String("topic", config.Kafka.OrderTopic),
		)
	}

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, publisher, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
