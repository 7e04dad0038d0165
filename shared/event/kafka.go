package event

import (
	"context"

	"innkeep/config"
	"innkeep/infras/kafka"

	"github.com/rs/zerolog/log"
)

// NewKafkaMirror returns a listener that republishes every change to the
// configured Kafka topic for downstream consumers. The in-process hub stays
// authoritative; a publish failure here is logged and otherwise ignored so a
// broker outage never fails an admin mutation.
func NewKafkaMirror(client kafka.Client, cfg *config.Config) Listener {
	topic := cfg.Kafka.ChangeTopic

	return func(ctx context.Context, change Change) {
		go func() {
			c := context.WithoutCancel(ctx)

			err := client.SendMessages(c, topic, kafka.Message{
				Key:   string(change.Entity) + ":" + change.ID,
				Value: change,
			})
			if err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("failed to mirror change event to kafka")
			}
		}()
	}
}
