package commands

import (
	"context"

	"guildBot/internal/domain"
)

type Command interface {
	Name() string
	Aliases() []string
	// AdminOnly commands are rejected by the router before Handle runs.
	AdminOnly() bool
	Handle(ctx context.Context, c *Context) error
}

type Context struct {
	Interaction domain.Interaction
	Out         domain.MessageSender
	Responder   domain.Responder
}

// Reply sends a short response visible to the invoking user.
func (c *Context) Reply(ctx context.Context, text string) error {
	return c.Responder.Respond(ctx, c.Interaction, text)
}
