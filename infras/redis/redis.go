package redis

import (
	"context"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"safar/config"
)

func New(config *config.Config) *goRedis.Client {
	ctx := context.Background()
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.KV.Redis.Primary.Host, config.KV.Redis.Primary.Port),
		Password: config.KV.Redis.Primary.Password,
		DB:       config.KV.Redis.Primary.DB,
	})

	_, err := client.Ping(ctx).Result()

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
		panic(err)
	}

	log.Info().
		Int("db", config.KV.Redis.Primary.DB).
		Str("host", config.KV.Redis.Primary.Host).
		Str("port", config.KV.Redis.Primary.Port).
		Msg("Connected to Redis")

	return client
}
