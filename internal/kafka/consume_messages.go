package kafka

import (
	"context"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"github.com/namanpunn/logikxmind-uat/internal/config"
	"github.com/namanpunn/logikxmind-uat/internal/usecase"
)

func StartConsumeMessages(
	sd fx.Shutdowner,
	lc fx.Lifecycle,
	conf *config.Config,
	chatUsecase usecase.ChatUsecase,
) {
	var consumer Consumer
	if conf.Kafka.Enabled {
		consumer = newKafkaConsumer(kafka.ReaderConfig{
			Brokers:     conf.Kafka.Brokers,
			GroupID:     conf.Kafka.GroupID,
			GroupTopics: []string{conf.Kafka.Topic},
			StartOffset: kafka.LastOffset,
		}, NewEventHandler(chatUsecase))
	} else {
		log.Warnf(context.Background(), "Kafka consumer is disabled in configuration")
		consumer = &noopConsumer{}
	}

	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := consumer.Start(runCtx); err != nil {
					log.Errorw(runCtx, "Kafka consumer stopped", "error", err)
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return consumer.Stop(ctx)
		},
	})
}
