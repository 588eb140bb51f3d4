// Package notifier pushes newly-discovered hackathons to the community's
// channels.
//
// The Discord webhook is the primary target; a Twitter cross-poster covers
// the public account. Both share the same message formatting and a dry-run
// implementation prints what would be posted.
package notifier

import (
	"fmt"
	"strings"

	"github.com/hackeroos/hackfeed/internal/event"
)

// Notifier posts notifications for newly-discovered events.
type Notifier interface {
	Notify(events []event.HackathonEvent) error
}

// FormatMessage renders one event as a chat message.
func FormatMessage(evt event.HackathonEvent) string {
	var b strings.Builder

	b.WriteString("🎉 New hackathon spotted!\n\n")
	fmt.Fprintf(&b, "**%s**\n", evt.Title)

	if !evt.StartDate.IsZero() {
		if !evt.EndDate.IsZero() && !evt.EndDate.Equal(evt.StartDate) {
			fmt.Fprintf(&b, "📅 %s – %s\n", evt.StartDate.Format("Jan 2, 2006"), evt.EndDate.Format("Jan 2, 2006"))
		} else {
			fmt.Fprintf(&b, "📅 %s\n", evt.StartDate.Format("Jan 2, 2006"))
		}
	}

	if evt.IsOnline() {
		b.WriteString("🌍 Online\n")
	} else if evt.Location != "" {
		fmt.Fprintf(&b, "📍 %s\n", evt.Location)
	}

	fmt.Fprintf(&b, "🔗 %s\n", evt.URL)
	fmt.Fprintf(&b, "\nvia %s", evt.Source)

	return b.String()
}

// truncate shortens a message to max runes, appending an ellipsis.
func truncate(msg string, max int) string {
	runes := []rune(msg)
	if len(runes) <= max {
		return msg
	}
	return string(runes[:max-3]) + "..."
}
