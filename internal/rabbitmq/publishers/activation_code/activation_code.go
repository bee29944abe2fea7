package activationcode

import (
	"context"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
	"registration/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

const RoutingKey = "user.activation_code"

type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ hands activation codes over to a mailer consuming from the
// exchange. Delivery is not retried.
type RabbitMQ struct {
	log       logging.Logger
	publisher Publisher
	exchange  string
}

func NewRabbitMQ(log logging.Logger, publisher Publisher, exchange string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	return &RabbitMQ{log: log, publisher: publisher, exchange: exchange}
}

func (s *RabbitMQ) SendActivationCode(ctx context.Context, u user.User) error {
	message := schema.ActivationCode{
		Type:      schema.TypeActivationCode,
		UserID:    u.ID.String(),
		Email:     u.Email.String(),
		Code:      string(u.ActivationCode),
		ExpiresAt: u.ActivationExpiresAt.UTC(),
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = s.publisher.PublishWithContext(ctx, s.exchange, RoutingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    u.CreatedAt,
		Body:         body,
	})
	if err != nil {
		s.log.Error(ctx, "Could not publish activation code.", logging.Entry("email", u.Email), logging.Entry("err", err))
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", RoutingKey),
		logging.Entry("userID", u.ID),
	)
	return nil
}
