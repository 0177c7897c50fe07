package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Handler processes one task. Returned errors are logged; the message is
// still committed so a bad folder cannot block the queue.
type Handler func(task HeaderTask) error

// Consume reads header tasks until ctx is cancelled, handling them one at a
// time in arrival order.
func Consume(ctx context.Context, brokers []string, topic, groupID string, handle Handler) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       1e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})
	defer reader.Close()

	logrus.WithFields(logrus.Fields{"brokers": brokers, "topic": topic}).Info("header worker started")

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return fmt.Errorf("reading from kafka: %w", err)
		}
		Dispatch(msg.Value, handle)
	}
}

// Dispatch decodes one message value and runs handle on it.
func Dispatch(value []byte, handle Handler) {
	var task HeaderTask
	if err := json.Unmarshal(value, &task); err != nil {
		logrus.WithError(err).Warn("failed to parse header task")
		return
	}
	if task.Folder == "" {
		logrus.Warn("header task without folder")
		return
	}
	if err := handle(task); err != nil {
		logrus.WithField("folder", task.Folder).WithError(err).Warn("header task failed")
	}
}
