package commands

import (
	"context"
	"fmt"
	"strings"

	"guildBot/internal/domain"
)

// Router resolves command invocations by name and enforces the
// administrator gate. Errors are returned to the caller, which owns
// turning them into user-visible replies.
type Router struct {
	prefix   string
	cmdIndex map[string]Command
}

func NewRouter(prefix string) *Router {
	return &Router{
		prefix:   prefix,
		cmdIndex: make(map[string]Command),
	}
}

func (r *Router) Register(cmd Command) {
	r.cmdIndex[strings.ToLower(cmd.Name())] = cmd
	for _, alias := range cmd.Aliases() {
		r.cmdIndex[strings.ToLower(alias)] = cmd
	}
}

// Lookup returns the command registered under name, if any.
func (r *Router) Lookup(name string) (Command, bool) {
	cmd, ok := r.cmdIndex[strings.ToLower(name)]
	return cmd, ok
}

// Dispatch runs the command named by the interaction.
func (r *Router) Dispatch(ctx context.Context, i domain.Interaction, out domain.MessageSender, responder domain.Responder) error {
	cmd, ok := r.Lookup(i.Command)
	if !ok {
		return fmt.Errorf("%w: command %q", domain.ErrUnknownControl, i.Command)
	}

	if cmd.AdminOnly() && !i.IsAdmin {
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, cmd.Name())
	}

	return cmd.Handle(ctx, &Context{
		Interaction: i,
		Out:         out,
		Responder:   responder,
	})
}

// ParseText extracts a command invocation from a prefixed chat
// message. ok is false when the text is not addressed to the bot.
func (r *Router) ParseText(text string) (name string, args []string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || !strings.HasPrefix(text, r.prefix) {
		return "", nil, false
	}
	parts := strings.Fields(strings.TrimPrefix(text, r.prefix))
	if len(parts) == 0 {
		return "", nil, false
	}
	return strings.ToLower(parts[0]), parts[1:], true
}
