// Package watch polls the external game server and announces
// transitions: up/down changes and player joins/leaves, each exactly
// once. A failed query is observed as "down, nobody on" rather than
// an error; the poller cannot tell an outage from a broken query and
// does not try to.
package watch

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"guildBot/internal/app/events"
	"guildBot/internal/domain"
)

type Config struct {
	GuildID   string
	ChannelID string
	// MentionTag is included in the online announcement so opted-in
	// members get pinged. Empty disables the mention.
	MentionTag domain.TagName
	Interval   time.Duration
}

// snapshot is the last observation. Written only by the poller
// goroutine, read by nobody else; no locking needed.
type snapshot struct {
	known   bool
	up      bool
	players map[string]struct{}
}

type Poller struct {
	cfg    Config
	status domain.StatusService
	sender domain.MessageSender
	store  domain.TagStore
	bus    *events.Bus

	prev snapshot
}

func NewPoller(cfg Config, status domain.StatusService, sender domain.MessageSender, store domain.TagStore, bus *events.Bus) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 60 * time.Second
	}
	return &Poller{
		cfg:    cfg,
		status: status,
		sender: sender,
		store:  store,
		bus:    bus,
	}
}

// Run polls until ctx is cancelled. A failed cycle never stops the
// next one.
func (p *Poller) Run(ctx context.Context) {
	t := time.NewTicker(p.cfg.Interval)
	defer t.Stop()

	log.Printf("watch: poller started (every=%s)", p.cfg.Interval)
	for {
		select {
		case <-t.C:
			p.Poll(ctx)
		case <-ctx.Done():
			log.Println("watch: poller stopped")
			return
		}
	}
}

// Poll runs one observe-diff-announce cycle.
func (p *Poller) Poll(ctx context.Context) {
	cur := p.observe(ctx)

	if !p.prev.known {
		// First observation is the baseline; announcing it would
		// replay history on every restart.
		p.prev = cur
		return
	}

	if cur.up != p.prev.up {
		p.announceState(ctx, cur)
	}
	p.announcePlayers(ctx, cur)

	p.prev = cur
}

func (p *Poller) observe(ctx context.Context) snapshot {
	cur := snapshot{known: true, players: make(map[string]struct{})}

	status, err := p.status.Status(ctx)
	if err != nil {
		log.Printf("watch: status query failed, observing down: %v", err)
		return cur
	}

	cur.up = status.Online
	for _, name := range status.Players {
		cur.players[name] = struct{}{}
	}
	return cur
}

func (p *Poller) announceState(ctx context.Context, cur snapshot) {
	var text string
	if cur.up {
		text = "The server is **online**! Come join."
		if p.cfg.MentionTag != "" {
			if mention, err := p.store.Mention(ctx, p.cfg.GuildID, p.cfg.MentionTag); err == nil {
				text = mention + " " + text
			}
		}
	} else {
		text = "The server went **offline**."
	}

	if err := p.sender.Send(ctx, p.cfg.ChannelID, text); err != nil {
		log.Printf("watch: state announcement failed: %v", err)
	}
	if p.bus != nil {
		p.bus.Publish(events.TopicServerState, events.ServerStateDTO{
			Online:  cur.up,
			Players: len(cur.players),
		})
	}
}

func (p *Poller) announcePlayers(ctx context.Context, cur snapshot) {
	for _, name := range diff(cur.players, p.prev.players) {
		p.announcePlayer(ctx, name, "joined", fmt.Sprintf("**%s** joined the server.", name))
	}
	for _, name := range diff(p.prev.players, cur.players) {
		p.announcePlayer(ctx, name, "left", fmt.Sprintf("**%s** left the server.", name))
	}
}

func (p *Poller) announcePlayer(ctx context.Context, name, event, text string) {
	if err := p.sender.Send(ctx, p.cfg.ChannelID, text); err != nil {
		log.Printf("watch: player announcement failed: %v", err)
	}
	if p.bus != nil {
		p.bus.Publish(events.TopicServerPlayer, events.ServerPlayerDTO{
			Player: name,
			Event:  event,
		})
	}
}

// diff returns the members of a that are missing from b, sorted so
// announcement order is stable.
func diff(a, b map[string]struct{}) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
