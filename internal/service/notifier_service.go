package service

import (
	"context"
	"encoding/json"
	"log"

	"yatta-helin-be/internal/constant"
	"yatta-helin-be/internal/pkg/mailer"
	"yatta-helin-be/internal/websocket"
	"yatta-helin-be/pkg/events"
	natspkg "yatta-helin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type INotifierService interface {
	Consume(ctx context.Context) error
}

// notifierService fans conversation events out to the sales inbox, the
// operator websocket feed and the NATS stream. Every sink is optional so a
// missing SMTP or NATS config degrades the deployment, not the chat.
type notifierService struct {
	pubSub        *gochannel.GoChannel
	emailService  mailer.IEmailService
	salesEmail    string
	hub           *websocket.Hub
	natsPublisher *natspkg.Publisher
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	emailService mailer.IEmailService,
	salesEmail string,
	hub *websocket.Hub,
	natsPublisher *natspkg.Publisher,
) INotifierService {
	return &notifierService{
		pubSub:        pubSub,
		emailService:  emailService,
		salesEmail:    salesEmail,
		hub:           hub,
		natsPublisher: natsPublisher,
	}
}

func (ns *notifierService) Consume(ctx context.Context) error {
	for _, topic := range []string{constant.HandoffRequestedTopic, constant.ReservationCompletedTopic} {
		messages, err := ns.pubSub.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func() {
			for msg := range messages {
				ns.processMessage(ctx, msg)
			}
		}()
	}
	return nil
}

func (ns *notifierService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Printf("[ERROR] Failed to unmarshal event: %v", err)
		msg.Ack() // malformed payloads never become valid on retry
		return
	}

	log.Printf("[INFO] Processing %s for session %s", event.Type, stringField(event.Data, "session_key"))

	ns.sendEmail(event)

	if ns.hub != nil {
		ns.hub.Broadcast(event)
	}

	if ns.natsPublisher != nil {
		if err := ns.natsPublisher.Publish(ctx, event); err != nil {
			log.Printf("[ERROR] Failed to republish %s to NATS: %v", event.Type, err)
		}
	}

	msg.Ack()
}

func (ns *notifierService) sendEmail(event events.BaseEvent) {
	if ns.emailService == nil || ns.salesEmail == "" {
		return
	}

	var err error
	switch event.Type {
	case events.TypeHandoffRequested:
		err = ns.emailService.SendHandoffAlert(
			ns.salesEmail,
			stringField(event.Data, "session_key"),
			stringField(event.Data, "user_name"),
			stringField(event.Data, "trigger_message"),
		)
	case events.TypeReservationCompleted:
		err = ns.emailService.SendReservationAlert(
			ns.salesEmail,
			stringField(event.Data, "session_key"),
			stringField(event.Data, "user_name"),
			stringField(event.Data, "service"),
			stringField(event.Data, "date"),
			stringField(event.Data, "time"),
			stringField(event.Data, "phone"),
			intField(event.Data, "people"),
		)
	default:
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to send %s alert email: %v", event.Type, err)
	}
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// intField tolerates the float64 that json.Unmarshal produces for numbers.
func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
