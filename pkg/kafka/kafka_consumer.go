package kafka

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerService 定义了消费 Kafka 消息的通用接口。
// 结算引擎的成交回报从这里进来。
type ConsumerService interface {
	// Consume 启动一个协程消费指定主题，将消息发送到返回的通道
	Consume(ctx context.Context, topic string, groupID string) (<-chan kafka.Message, error)
	Close()
}

type kafkaConsumer struct {
	brokerURL string
}

func NewKafkaConsumer(brokerURL string) ConsumerService {
	return &kafkaConsumer{brokerURL: brokerURL}
}

func (c *kafkaConsumer) Consume(ctx context.Context, topic string, groupID string) (<-chan kafka.Message, error) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{c.brokerURL},
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// 成交回报不能丢，从上次提交的offset继续
		StartOffset:    kafka.FirstOffset,
		CommitInterval: time.Second, // 自动提交，每秒一次
		MaxAttempts:    3,
	})
	outputCh := make(chan kafka.Message, 256)

	go func() {
		defer close(outputCh)
		defer r.Close()
		for {
			m, err := r.FetchMessage(ctx)
			if err != nil {
				// Context 被取消（服务关闭），正常退出
				if ctx.Err() != nil {
					return
				}
				log.Printf("ERROR: Kafka read error on topic %s: %v", topic, err)
				time.Sleep(time.Second)
				continue
			}

			select {
			case outputCh <- m:
				// 依赖 CommitInterval 自动提交 Offset
			case <-ctx.Done():
				return
			}
		}
	}()

	return outputCh, nil
}

func (c *kafkaConsumer) Close() {
	log.Println("Kafka Consumer Service closing...")
}
