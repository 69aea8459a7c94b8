package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter *kafka.Writer 满足该接口，测试中可替换
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaReporter 把每个结果作为一条消息发布，key 为算法名称
type KafkaReporter struct {
	w MessageWriter
}

func NewKafkaReporter(w MessageWriter) *KafkaReporter {
	return &KafkaReporter{w: w}
}

// NewKafkaWriter 创建同步写入的 kafka.Writer，调用方负责 Close
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}
}

func (r *KafkaReporter) Report(ctx context.Context, o Outcome) error {
	value, err := encode(o)
	if err != nil {
		return fmt.Errorf("encode %s: %w", o.Label, err)
	}

	msg := kafka.Message{
		Key:   []byte(o.Label),
		Value: value,
		Time:  time.Now(),
	}
	if err := r.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s: %w", o.Label, err)
	}
	return nil
}
