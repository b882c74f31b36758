package kafka

import (
	"github.com/IBM/sarama"
)

// InitConsumerGroup creates the sarama consumer group used by the tally
// worker to follow accepted-vote events.
func InitConsumerGroup(brokers []string, groupID string) (sarama.ConsumerGroup, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_0_0_0
	config.ClientID = "voting-service"
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, err
	}

	return group, nil
}
