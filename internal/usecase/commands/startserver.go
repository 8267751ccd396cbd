package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"guildBot/internal/domain"
)

// StartServerCommand asks the hosting account to boot the game
// server. Successful invocations are rate limited per guild so a
// burst of presses cannot hammer the hosting panel.
type StartServerCommand struct {
	hosting  domain.HostingService
	cooldown time.Duration
	now      func() time.Time

	mu      sync.Mutex
	lastRun map[string]time.Time
}

func NewStartServerCommand(hosting domain.HostingService, cooldown time.Duration) *StartServerCommand {
	return &StartServerCommand{
		hosting:  hosting,
		cooldown: cooldown,
		now:      time.Now,
		lastRun:  make(map[string]time.Time),
	}
}

func (c *StartServerCommand) Name() string { return "startserver" }

func (c *StartServerCommand) Aliases() []string { return []string{"start"} }

func (c *StartServerCommand) AdminOnly() bool { return true }

func (c *StartServerCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	if c.hosting == nil {
		return cmdCtx.Reply(ctx, "Server starting is not configured on this bot.")
	}

	guildID := cmdCtx.Interaction.GuildID
	if remaining, ok := c.onCooldown(guildID); ok {
		return fmt.Errorf("%w: try again in %s", domain.ErrCooldownActive, remaining.Round(time.Second))
	}

	if err := c.hosting.StartServer(ctx); err != nil {
		return fmt.Errorf("%w: start server: %v", domain.ErrExternalService, err)
	}

	c.mu.Lock()
	c.lastRun[guildID] = c.now()
	c.mu.Unlock()

	return cmdCtx.Reply(ctx, "Start request sent. The server usually takes a minute or two to come up.")
}

func (c *StartServerCommand) onCooldown(guildID string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	last, ok := c.lastRun[guildID]
	if !ok {
		return 0, false
	}
	elapsed := c.now().Sub(last)
	if elapsed >= c.cooldown {
		return 0, false
	}
	return c.cooldown - elapsed, true
}
