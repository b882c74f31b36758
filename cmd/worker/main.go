package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"voting-service/configs"
	"voting-service/configs/database"
	adapters "voting-service/internal/adapters/kafka"
	"voting-service/internal/ports/models"
	"voting-service/internal/server/repository"
	"voting-service/internal/server/service"
	"voting-service/pkg/logger"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// The tally worker follows accepted-vote events and keeps the Redis
// leaderboard cache warm so API reads rarely pay for a full recompute.
func main() {
	config := configs.Load()

	if err := logger.InitLogger(config.LogLevel); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Logger.Sync()

	db, err := database.NewMySQLConnection(
		config.MySQLUser,
		config.MySQLPassword,
		config.MySQLHost,
		config.MySQLPort,
		config.MySQLDB,
	)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	redisClient, err := database.InitRedis(config.RedisURL)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	cache := service.NewRedisLeaderboardCache(redisClient)
	leaderboardService := service.NewLeaderboardService(
		repository.NewEventRepository(db),
		repository.NewCandidateRepository(db),
		repository.NewVoteRepository(db),
		repository.NewUserRepository(db),
		repository.NewSettingsRepository(db),
		cache,
	)

	group, err := adapters.InitConsumerGroup(config.KafkaBrokers, config.KafkaGroupID)
	if err != nil {
		logger.Logger.Fatal("Failed to create consumer group", zap.Error(err))
	}
	defer group.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	handler := &tallyRefresher{leaderboard: leaderboardService, cache: cache}

	logger.Logger.Info("Tally worker starting",
		zap.Strings("brokers", config.KafkaBrokers),
		zap.String("topic", config.KafkaTopic),
	)
	for {
		if err := group.Consume(ctx, []string{config.KafkaTopic}, handler); err != nil {
			logger.Logger.Error("Consumer error", zap.Error(err))
		}
		if ctx.Err() != nil {
			break
		}
	}

	logger.Logger.Info("Tally worker stopped")
}

type tallyRefresher struct {
	leaderboard *service.LeaderboardService
	cache       service.LeaderboardCache
}

func (t *tallyRefresher) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (t *tallyRefresher) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (t *tallyRefresher) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var vote models.VoteMessage
		if err := json.Unmarshal(message.Value, &vote); err != nil {
			logger.Logger.Warn("Skipping malformed vote message", zap.Error(err))
			session.MarkMessage(message, "")
			continue
		}

		leaderboard, err := t.leaderboard.ComputeLeaderboard(session.Context(), vote.EventID)
		if err != nil {
			logger.Logger.Warn("Failed to recompute leaderboard",
				zap.Uint("event_id", vote.EventID), zap.Error(err))
			session.MarkMessage(message, "")
			continue
		}
		if err := t.cache.Set(session.Context(), vote.EventID, leaderboard); err != nil {
			logger.Logger.Warn("Failed to refresh leaderboard cache",
				zap.Uint("event_id", vote.EventID), zap.Error(err))
		}

		session.MarkMessage(message, "")
	}
	return nil
}
