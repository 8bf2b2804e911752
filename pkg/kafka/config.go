package kafka

// Config holds Kafka connection parameters.
type Config struct {
	ConsumerGroup string

	Brokers []string

	// BatchTimeout in milliseconds before a partially filled batch is flushed.
	BatchTimeoutMs int
}
