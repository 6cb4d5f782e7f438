package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"jumatrek/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// Message pairs a partition key with a JSON-encodable payload.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	payload, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Str("key", m.Key).Msg("failed to marshal message payload")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message payload: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: payload,
	}, nil
}

// DecodeKafkaMessage unmarshals a consumed record's payload into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (Message, error) {
	var payload T

	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal message payload")

		return Message{}, fmt.Errorf("failed to unmarshal message payload: %w", err)
	}

	return Message{
		Key:   string(msg.Key),
		Value: payload,
	}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message))
}

type client struct {
	config    *config.Config
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport
}

func New(config *config.Config) Client {
	mechanism := plain.Mechanism{
		Username: config.Kafka.SASL.Username,
		Password: config.Kafka.SASL.Password,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("kafka client initialized")

	return &client{
		config:    config,
		dialer:    &kafkaGo.Dialer{DualStack: true, SASLMechanism: mechanism},
		transport: &kafkaGo.Transport{SASL: mechanism},
	}
}

func (k *client) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
	}

	records := make([]kafkaGo.Message, 0, len(messages))
	for _, message := range messages {
		record, err := message.ToKafkaMessage()
		if err != nil {
			return fmt.Errorf("failed to convert message: %w", err)
		}

		records = append(records, record)
	}

	if err = writer.WriteMessages(ctx, records...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to send messages")

		return fmt.Errorf("failed to send messages: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(records)).Msg("messages sent")

	return nil
}

// Consume reads the topic until ctx is done, dispatching each record to
// handler on its own goroutine. An empty consumerGroup falls back to the
// configured default group.
func (k *client) Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message)) {
	if topic == "" {
		log.Error().Msg("cannot consume from an empty topic")

		return
	}

	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	for {
		select {
		case <-ctx.Done():
			if err := reader.Close(); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("failed to close kafka reader")
			}

			return
		default:
			msg, err := reader.ReadMessage(ctx)
			if err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("failed to read message")

				continue
			}

			go handler(msg)
		}
	}
}
