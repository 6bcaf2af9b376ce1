package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"safar/config"
	"safar/infras/kafka"
	"safar/internal/domains/booking/model"
	"safar/internal/email"
	"safar/shared/logger"
)

// The worker consumes booking events and sends customer notifications. It
// runs as a separate process so a notification backlog never slows the API.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := kafka.New(cfg)
	sender := email.NewSender()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		received := <-sig
		log.Info().Str("signal", received.String()).Msg("Shutting down worker.")

		cancel()
	}()

	log.Info().
		Str("topic", cfg.Kafka.Topics.BookingEvents).
		Str("group", cfg.Kafka.ConsumerGroup).
		Msg("Worker consuming booking events.")

	client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.BookingEvents, func(message kafkaGo.Message) {
		event, err := kafka.DecodeKafkaMessage[model.BookingEvent](message)
		if err != nil {
			log.Error().Err(err).Msg("skipping undecodable booking event")

			return
		}

		if err := sender.Send(ctx, event); err != nil {
			log.Error().Err(err).Str("bookingId", event.BookingID).Msg("failed to send booking notification")
		}
	})
}
