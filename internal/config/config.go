// Package config loads hackfeed configuration from HCL files and
// HACKFEED_-prefixed environment variables.
package config

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `hcl:"environment" env:"ENVIRONMENT" default:"development"`

	FeedPath    string `hcl:"feed_path" env:"FEED_PATH" default:"data/hackathons.json"`
	CuratedPath string `hcl:"curated_path" env:"CURATED_PATH" default:"data/curated.json"`

	Sources    []string `hcl:"sources" env:"SOURCES" default:"curated,devpost,mlh"`
	DevpostURL string   `hcl:"devpost_url" env:"DEVPOST_URL" default:"https://devpost.com/hackathons?challenge_type[]=all&status[]=upcoming"`
	MLHURL     string   `hcl:"mlh_url" env:"MLH_URL" default:"https://mlh.io/seasons/2026/events.json"`

	FetchTimeout time.Duration `hcl:"fetch_timeout" env:"FETCH_TIMEOUT" default:"30s"`
	FetchRetries int           `hcl:"fetch_retries" env:"FETCH_RETRIES" default:"2"`
	RenderJS     bool          `hcl:"render_js" env:"RENDER_JS"`
	RenderWait   time.Duration `hcl:"render_wait" env:"RENDER_WAIT" default:"4s"`

	MaxEvents int `hcl:"max_events" env:"MAX_EVENTS" default:"50"`

	DiscordWebhookURL string `hcl:"discord_webhook_url" env:"DISCORD_WEBHOOK_URL"`
}

var (
	cfg  Config
	once sync.Once
)

func Get() Config {
	once.Do(func() {
		// Local development keeps credentials in a .env file.
		_ = godotenv.Load()

		loader := aconfig.LoaderFor(&cfg, aconfig.Config{
			EnvPrefix: "HACKFEED",
			Files:     []string{"./hackfeed.hcl", "./hackfeed.local.hcl", "$HOME/.config/hackfeed/hackfeed.hcl"},
			FileDecoders: map[string]aconfig.FileDecoder{
				".hcl": aconfighcl.New(),
			},
		})

		if err := loader.Load(); err != nil {
			slog.Error("failed to load config", "err", err)
		}
	})

	return cfg
}
