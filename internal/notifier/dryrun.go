package notifier

import (
	"fmt"

	"github.com/hackeroos/hackfeed/internal/event"
)

// DryRunNotifier prints what would be posted without actually posting.
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier.
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the messages that would be posted.
func (n *DryRunNotifier) Notify(events []event.HackathonEvent) error {
	for i, evt := range events {
		msg := FormatMessage(evt)
		fmt.Printf("--- Message %d/%d ---\n", i+1, len(events))
		fmt.Println(msg)
		fmt.Printf("\n(Length: %d characters)\n\n", len(msg))
	}
	return nil
}
