package notificationqueue

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationQueueInstance contracts.NotificationQueueService
	onceNotificationQueue     sync.Once
)

type notificationQueueService struct {
	channel   *amqp.Channel
	queueName string
	Log       *zap.Logger
}

// NewNotificationQueueService opens a channel and declares the durable
// notification queue.
func NewNotificationQueueService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.NotificationQueueService, error) {
	var initErr error
	onceNotificationQueue.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			initErr = exceptions.ErrRabbitMQPublishMessage(err)
			return
		}

		notificationQueueInstance = &notificationQueueService{
			channel:   ch,
			queueName: queueName,
			Log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return notificationQueueInstance, nil
}

func (s *notificationQueueService) Publish(ctx context.Context, message *models.NotificationMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("notificationQueueService.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.String(constvars.LoggingNotificationTypeKey, message.Type),
	)

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.channel.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("notificationQueueService.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err)
	}

	s.Log.Info("notificationQueueService.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}
