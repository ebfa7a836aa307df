package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"yatta-helin-be/pkg/events"
	pktNats "yatta-helin-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Tails the event stream on a terminal. Handy during demos and when no
// operator dashboard is running.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	sub, err := pktNats.NewSubscriber(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("helin.>", "helin-alerts-cli", func(ctx context.Context, event events.Event) error {
		switch event.EventType() {
		case events.TypeHandoffRequested:
			color.Red("\n🔔 HANDOFF  session=%s", field(event, "session_key"))
			color.Red("   user=%v message=%v", event.Payload()["user_name"], event.Payload()["trigger_message"])
		case events.TypeReservationCompleted:
			color.Green("\n📅 RESERVATION  session=%s", field(event, "session_key"))
			color.Green("   service=%v date=%v time=%v people=%v phone=%v",
				event.Payload()["service"], event.Payload()["date"], event.Payload()["time"],
				event.Payload()["people"], event.Payload()["phone"])
		default:
			color.Yellow("\n• %s %v", event.EventType(), event.Payload())
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	color.Cyan("🚀 Tailing helin.> on %s (ctrl-c to stop)", natsURL)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	fmt.Println("\nBye")
}

func field(event events.Event, key string) string {
	if v, ok := event.Payload()[key].(string); ok {
		return v
	}
	return ""
}
