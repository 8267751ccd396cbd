// Package announce fires the daily UTC-midnight announcement exactly
// once per calendar day. The loop polls on a short interval instead
// of sleeping until midnight, so a restart never skips or doubles the
// day; the announcement may land up to one interval late.
package announce

import (
	"context"
	"log"
	"time"

	"guildBot/internal/app/events"
	"guildBot/internal/domain"
)

type Config struct {
	GuildID    string
	ChannelID  string
	MentionTag domain.TagName
	Interval   time.Duration
}

type Loop struct {
	cfg    Config
	sender domain.MessageSender
	store  domain.TagStore
	bus    *events.Bus
	now    func() time.Time

	// lastFired guards against firing twice inside the same midnight
	// window. The day is marked before the send is attempted: a failed
	// send is logged and retried the next day, never the next tick.
	lastFired string
}

func NewLoop(cfg Config, sender domain.MessageSender, store domain.TagStore, bus *events.Bus) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	return &Loop{
		cfg:    cfg,
		sender: sender,
		store:  store,
		bus:    bus,
		now:    time.Now,
	}
}

// SetClock replaces the wall clock, for tests.
func (l *Loop) SetClock(now func() time.Time) {
	l.now = now
}

// Run polls until ctx is cancelled. Errors never stop the loop.
func (l *Loop) Run(ctx context.Context) {
	t := time.NewTicker(l.cfg.Interval)
	defer t.Stop()

	log.Printf("announce: loop started (channel=%s every=%s)", l.cfg.ChannelID, l.cfg.Interval)
	for {
		select {
		case <-t.C:
			l.Tick(ctx)
		case <-ctx.Done():
			log.Println("announce: loop stopped")
			return
		}
	}
}

// Tick runs one poll cycle: fire if we are inside the midnight window
// and have not fired for today's date yet.
func (l *Loop) Tick(ctx context.Context) {
	utc := l.now().UTC()
	if utc.Hour() != 0 || utc.Minute() != 0 {
		return
	}

	today := utc.Format("2006-01-02")
	if today == l.lastFired {
		return
	}
	l.lastFired = today

	if err := l.send(ctx); err != nil {
		log.Printf("announce: send failed, retrying tomorrow: %v", err)
		return
	}

	if l.bus != nil {
		l.bus.Publish(events.TopicAnnouncement, events.AnnouncementDTO{Date: today})
	}
	log.Printf("announce: fired for %s", today)
}

func (l *Loop) send(ctx context.Context) error {
	mention, err := l.store.Mention(ctx, l.cfg.GuildID, l.cfg.MentionTag)
	if err != nil {
		// Announce anyway; a missing role should not silence the day.
		log.Printf("announce: no mention for %q: %v", l.cfg.MentionTag, err)
		mention = ""
	}

	text := "A new day has begun. Have a good one!"
	if mention != "" {
		text = mention + " " + text
	}
	return l.sender.Send(ctx, l.cfg.ChannelID, text)
}
