package notifier

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hackeroos/hackfeed/internal/event"
)

const (
	// Discord rejects message content above this length.
	discordMaxMessageLen = 2000
	discordTimeout       = 15 * time.Second
)

// DiscordNotifier posts events to a Discord channel via an incoming webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *resty.Client
	// delay between posts to stay under the webhook rate limit
	postDelay time.Duration
}

// NewDiscordNotifier creates a notifier for the given webhook URL.
func NewDiscordNotifier(webhookURL string) (*DiscordNotifier, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("discord webhook URL is required")
	}

	return &DiscordNotifier{
		webhookURL: webhookURL,
		client:     resty.New().SetTimeout(discordTimeout),
		postDelay:  time.Second,
	}, nil
}

// Notify posts one message per event.
func (n *DiscordNotifier) Notify(events []event.HackathonEvent) error {
	for i, evt := range events {
		msg := truncate(FormatMessage(evt), discordMaxMessageLen)

		resp, err := n.client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{"content": msg}).
			Post(n.webhookURL)
		if err != nil {
			return fmt.Errorf("posting to discord for %s: %w", evt.URL, err)
		}
		if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
			return fmt.Errorf("discord webhook returned status %d for %s", resp.StatusCode(), evt.URL)
		}

		if i < len(events)-1 {
			time.Sleep(n.postDelay)
		}
	}

	return nil
}
