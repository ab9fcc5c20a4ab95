package infrastructure

import "context"

// MessagePublisher абстракция над Kafka producer
type MessagePublisher interface {
	PublishMessage(ctx context.Context, key string, value []byte) error
	Close() error
}
