package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type MQConn struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func Connect(url string) (*MQConn, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &MQConn{
		conn: conn,
		channel: channel,
	}, nil
}

func (mq *MQConn) Publish(queue string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return err
	}

	return mq.channel.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body: body,
	})
}

func (mq *MQConn) Close() error {
	if err := mq.channel.Close(); err != nil {
		return err
	}
	return mq.conn.Close()
}
