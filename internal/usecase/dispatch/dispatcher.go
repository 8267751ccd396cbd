// Package dispatch routes inbound interactions to the toggle engine
// or the command catalog and owns the error-to-reply boundary: no
// user-initiated failure escapes past it.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"

	"guildBot/internal/app/events"
	"guildBot/internal/domain"
	"guildBot/internal/usecase/commands"
	"guildBot/internal/usecase/tags"
)

type Dispatcher struct {
	registry  *tags.Registry
	engine    *tags.Engine
	router    *commands.Router
	out       domain.MessageSender
	responder domain.Responder
	bus       *events.Bus
}

func New(registry *tags.Registry, engine *tags.Engine, router *commands.Router, out domain.MessageSender, responder domain.Responder, bus *events.Bus) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		engine:    engine,
		router:    router,
		out:       out,
		responder: responder,
		bus:       bus,
	}
}

// HandleInteraction processes one button press or command invocation.
// It always answers the user, even on failure.
func (d *Dispatcher) HandleInteraction(ctx context.Context, i domain.Interaction) error {
	var err error
	switch {
	case i.ControlID != "":
		err = d.handleControl(ctx, i)
	case i.Command != "":
		err = d.router.Dispatch(ctx, i, d.out, d.responder)
	default:
		return nil
	}

	if err == nil {
		return nil
	}

	reply, loggable := userMessage(err)
	if loggable {
		log.Printf("dispatch: %s by %s failed: %v", describe(i), i.Username, err)
		if d.bus != nil {
			d.bus.Publish(events.TopicAppError, events.ErrorDTO{
				Source: "dispatch",
				Detail: err.Error(),
			})
		}
	}
	if respondErr := d.responder.Respond(ctx, i, reply); respondErr != nil {
		log.Printf("dispatch: reply to %s failed: %v", i.Username, respondErr)
	}
	return nil
}

// HandleMessage routes prefixed chat messages into the same catalog
// the slash commands use.
func (d *Dispatcher) HandleMessage(ctx context.Context, i domain.Interaction, text string) error {
	name, args, ok := d.router.ParseText(text)
	if !ok {
		return nil
	}
	if _, known := d.router.Lookup(name); !known {
		// Not every "!" message is addressed to the bot.
		return nil
	}
	i.Command = name
	i.Args = args
	return d.HandleInteraction(ctx, i)
}

func (d *Dispatcher) handleControl(ctx context.Context, i domain.Interaction) error {
	ctl, err := d.registry.Control(i.ControlID)
	if err != nil {
		return err
	}

	outcome, err := d.engine.Toggle(ctx, i.GuildID, i.UserID, ctl.Tag, ctl.Group)
	if err != nil {
		return err
	}

	if d.bus != nil {
		d.bus.Publish(events.TopicInteraction, events.InteractionDTO{
			Username:  i.Username,
			ControlID: ctl.ID,
			Outcome:   string(outcome),
		})
	}

	ack := fmt.Sprintf("Removed the **%s** role.", ctl.Label)
	if outcome == domain.OutcomeAdded {
		ack = fmt.Sprintf("You now have the **%s** role.", ctl.Label)
	}
	return d.responder.Respond(ctx, i, ack)
}

// userMessage maps an error to the private reply the user sees.
// loggable is false for expected rejections that would only spam the
// server log.
func userMessage(err error) (reply string, loggable bool) {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return "You need administrator permissions for that.", false
	case errors.Is(err, domain.ErrCooldownActive):
		return fmt.Sprintf("Slow down: %s.", err), false
	case errors.Is(err, domain.ErrUnknownControl), errors.Is(err, domain.ErrUnknownTag):
		return "That button is not set up correctly. Please contact an administrator.", true
	case errors.Is(err, domain.ErrExternalService):
		return "The game server service did not respond. Try again in a bit.", true
	default:
		return "Something went wrong on our side. Sorry! It has been logged.", true
	}
}

func describe(i domain.Interaction) string {
	if i.ControlID != "" {
		return "control " + i.ControlID
	}
	return "command " + i.Command
}
