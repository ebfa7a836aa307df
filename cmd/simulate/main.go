package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"yatta-helin-be/pkg/helin"
	"yatta-helin-be/pkg/helin/catalog"
	"yatta-helin-be/pkg/store"

	"github.com/fatih/color"
)

// Local REPL over the engine. No server, no database: type a message,
// see the reply, intent and session state after every turn.
func main() {
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	engine := helin.New(cat, helin.DefaultConfig())

	session := store.NewSessionContext()

	color.Cyan("🚀 Helin Simulator")
	fmt.Println("Type a message and press enter. Commands: /state /reset /quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		color.Set(color.FgYellow)
		fmt.Print("\nYOU> ")
		color.Unset()

		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch input {
		case "/quit", "/exit":
			return
		case "/reset":
			session = store.NewSessionContext()
			color.Green("Session reset")
			continue
		case "/state":
			printState(session)
			continue
		}

		res := engine.Process(helin.EngineRequest{
			Message: input,
			Session: &session,
		})
		if res.SessionPatch != nil {
			session = res.SessionPatch.Apply(session)
		}

		color.Green("HELIN> %s", res.Reply)
		fmt.Printf("       intent=%s mode=%s", res.Intent, session.Mode)
		if res.MatchedFaqID != "" {
			fmt.Printf(" faq=%s", res.MatchedFaqID)
		}
		if res.NeedsHuman {
			color.Set(color.FgRed)
			fmt.Print(" [needs human]")
			color.Unset()
		}
		if res.ReservationCompleted {
			color.Set(color.FgMagenta)
			fmt.Print(" [reservation completed]")
			color.Unset()
		}
		fmt.Println()
	}
}

func printState(s store.SessionContext) {
	fmt.Printf("mode=%s name=%q service=%q greetings=%d handoffs=%d\n",
		s.Mode, s.UserName, s.SelectedService, s.GreetingCount, s.HandoffCount)
	d := s.Draft()
	fmt.Printf("draft: date=%q time=%q people=%d phone=%q\n", d.Date, d.Time, d.People, d.Phone)
}
