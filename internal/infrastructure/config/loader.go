package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string
	Port         string

	GuildID           string
	AnnounceChannelID string
	StatusChannelID   string

	ServerHost  string
	AternosUser string
	AternosPass string

	CommandPrefix string
	PresenceName  string
	PresenceURL   string

	AnnounceInterval time.Duration
	PollInterval     time.Duration
	StartCooldown    time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		Port:              getenv("PORT", "8080"),
		GuildID:           os.Getenv("GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),
		StatusChannelID:   os.Getenv("STATUS_CHANNEL_ID"),
		ServerHost:        os.Getenv("MC_SERVER_HOST"),
		AternosUser:       os.Getenv("ATERNOS_USER"),
		AternosPass:       os.Getenv("ATERNOS_PASS"),
		CommandPrefix:     getenv("COMMAND_PREFIX", "!"),
		PresenceName:      getenv("PRESENCE_NAME", "twitch.tv/ineptateverything"),
		PresenceURL:       getenv("PRESENCE_URL", "https://twitch.tv/ineptateverything"),
		AnnounceInterval:  getduration("ANNOUNCE_INTERVAL", 30*time.Second),
		PollInterval:      getduration("POLL_INTERVAL", 60*time.Second),
		StartCooldown:     getduration("START_COOLDOWN", 300*time.Second),
	}

	if cfg.AternosUser == "" || cfg.AternosPass == "" {
		log.Println("config: ATERNOS_USER/ATERNOS_PASS not set, startserver disabled")
	}
	if cfg.ServerHost == "" {
		log.Println("config: MC_SERVER_HOST not set, status watcher disabled")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s invalid (%q), using %s", key, v, fallback)
		return fallback
	}
	return d
}
