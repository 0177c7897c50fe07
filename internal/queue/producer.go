package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Producer interface {
	SendHeaderTask(ctx context.Context, task HeaderTask) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

// NewProducer connects to the first broker and makes sure the topic exists.
// When the broker is unreachable it falls back to a producer that only logs.
func NewProducer(brokers []string, topic string) Producer {
	log := logrus.WithFields(logrus.Fields{"brokers": brokers, "topic": topic})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if len(brokers) == 0 {
		log.Warn("no kafka brokers configured, using mock producer")
		return &mockProducer{}
	}
	conn, err := kafka.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		log.WithError(err).Warn("kafka connection failed, using mock producer")
		return &mockProducer{}
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil {
		log.WithError(err).Debug("could not create topic (might already exist)")
	}

	return &kafkaProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}}
}

func (p *kafkaProducer) SendHeaderTask(ctx context.Context, task HeaderTask) error {
	value, err := json.Marshal(task)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(task.Folder),
		Value: value,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}
	logrus.WithField("folder", task.Folder).Info("header task queued")
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

// mockProducer lets the API run without kafka.
type mockProducer struct{}

func (m *mockProducer) SendHeaderTask(_ context.Context, task HeaderTask) error {
	logrus.WithField("folder", task.Folder).Info("MOCK: header task")
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}
