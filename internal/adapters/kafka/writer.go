package kafka

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"voting-service/internal/ports/models"

	"github.com/segmentio/kafka-go"
)

// VoteWriter publishes accepted-vote events. Messages are keyed by voter id
// so one voter's votes land on one partition in order.
type VoteWriter struct {
	writer *kafka.Writer
}

func NewVoteWriter(brokers []string, topic string) *VoteWriter {
	return &VoteWriter{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
	}
}

// PublishVote emits one accepted-vote message
func (w *VoteWriter) PublishVote(ctx context.Context, msg models.VoteMessage) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(msg.VoterID))

	return w.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// Close flushes and closes the underlying writer
func (w *VoteWriter) Close() error {
	return w.writer.Close()
}
