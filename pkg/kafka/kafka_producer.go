package kafka

import (
	"context"
	"log"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

// Kafka 生产者服务
// 订单生命周期事件发给外部撮合/结算引擎，JSON编码
// 定义接口，方便测试和替换
type ProducerService interface {
	Produce(ctx context.Context, key []byte, msg interface{}) error
	Close()
}

type kafkaProducer struct {
	orderWriter *kafka.Writer
}

func NewOrderProducer(brokerURL string, topic string) ProducerService {
	return &kafkaProducer{
		orderWriter: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{}, // 保证写入负载均衡
		},
	}
}

// Produce 序列化消息并写入 Kafka。
// key用订单所属token地址，保证同一token的事件进同一个 Partition（有序性）
func (p *kafkaProducer) Produce(ctx context.Context, key []byte, msg interface{}) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.orderWriter.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: data,
	})
}

func (p *kafkaProducer) Close() {
	if err := p.orderWriter.Close(); err != nil {
		log.Printf("Error closing Order writer: %v", err)
	}
}
