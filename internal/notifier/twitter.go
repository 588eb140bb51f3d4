package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/hackeroos/hackfeed/internal/event"
)

// twitterMaxLen is the tweet character limit.
const twitterMaxLen = 280

// TwitterNotifier cross-posts events to the community Twitter account.
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a Twitter notifier using environment variables.
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{client: twitter.NewClient(httpClient)}, nil
}

// Notify posts one tweet per event.
func (n *TwitterNotifier) Notify(events []event.HackathonEvent) error {
	for i, evt := range events {
		tweet := formatTweet(evt)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for %s: %w", evt.URL, err)
		}

		// Rate limiting: wait between tweets
		if i < len(events)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweet renders an event within the tweet limit.
func formatTweet(evt event.HackathonEvent) string {
	tweet := fmt.Sprintf("🎉 %s\n", evt.Title)

	if !evt.StartDate.IsZero() {
		tweet += fmt.Sprintf("📅 %s\n", evt.StartDate.Format("Jan 2, 2006"))
	}
	if evt.IsOnline() {
		tweet += "🌍 Online\n"
	} else if evt.Location != "" {
		tweet += fmt.Sprintf("📍 %s\n", evt.Location)
	}

	tweet += fmt.Sprintf("\n%s\n#hackathon #Hackeroos", evt.URL)

	return truncate(tweet, twitterMaxLen)
}
