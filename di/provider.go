package di

import (
	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/shared/event"
)

// provideEventHub wires the in-process change hub and, when Kafka is enabled,
// mirrors every change to the configured topic.
func provideEventHub(otl otel.Otel, cfg *config.Config, kafkaClient kafka.Client) event.Hub {
	hub := event.NewHub(otl)

	if cfg.Kafka.Enable {
		hub.Subscribe(event.NewKafkaMirror(kafkaClient, cfg))
	}

	return hub
}
