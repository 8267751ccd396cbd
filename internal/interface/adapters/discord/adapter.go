// Package discordadapter translates Discord gateway events into the
// bot's typed interactions and hands them to the dispatcher.
package discordadapter

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"guildBot/internal/domain"
	"guildBot/internal/usecase/commands"
)

type Config struct {
	GuildID      string
	PresenceName string
	PresenceURL  string
	Catalog      []commands.CommandDescriptor
}

type InteractionHandler func(ctx context.Context, i domain.Interaction) error

type MessageHandler func(ctx context.Context, i domain.Interaction, text string) error

type Adapter struct {
	cfg     Config
	session *discordgo.Session

	mu            sync.RWMutex
	ctx           context.Context
	onInteraction InteractionHandler
	onMessage     MessageHandler
}

func NewAdapter(session *discordgo.Session, cfg Config) *Adapter {
	return &Adapter{
		cfg:     cfg,
		session: session,
	}
}

func (a *Adapter) SetHandlers(onInteraction InteractionHandler, onMessage MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onInteraction = onInteraction
	a.onMessage = onMessage
}

// Open connects to the gateway. An authentication failure is returned
// to the caller, which treats it as fatal. Once ctx is cancelled the
// adapter stops accepting new activations; in-flight handlers finish
// on their own goroutines before Close tears the connection down.
func (a *Adapter) Open(ctx context.Context) error {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	a.session.AddHandler(a.handleReady)
	a.session.AddHandler(a.handleInteractionCreate)
	a.session.AddHandler(a.handleMessageCreate)

	a.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("discord: open session: %w", err)
	}
	return nil
}

func (a *Adapter) Close() error {
	return a.session.Close()
}

func (a *Adapter) handleReady(s *discordgo.Session, _ *discordgo.Ready) {
	log.Printf("discord: logged in as %s", s.State.User.Username)

	if err := s.UpdateStreamingStatus(0, a.cfg.PresenceName, a.cfg.PresenceURL); err != nil {
		log.Printf("discord: set presence: %v", err)
	}

	defs := make([]*discordgo.ApplicationCommand, 0, len(a.cfg.Catalog))
	adminPerm := int64(discordgo.PermissionAdministrator)
	for _, desc := range a.cfg.Catalog {
		cmd := &discordgo.ApplicationCommand{
			Name:        desc.Name,
			Description: desc.Description,
		}
		if desc.AdminOnly {
			cmd.DefaultMemberPermissions = &adminPerm
		}
		defs = append(defs, cmd)
	}

	if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, a.cfg.GuildID, defs); err != nil {
		log.Printf("discord: register commands: %v", err)
		return
	}
	log.Printf("discord: registered %d slash commands", len(defs))
}

func (a *Adapter) handleInteractionCreate(_ *discordgo.Session, ic *discordgo.InteractionCreate) {
	ctx, handler := a.interactionHandler()
	if handler == nil || ctx.Err() != nil {
		return
	}

	i := domain.Interaction{
		ID:        ic.ID,
		Token:     ic.Token,
		GuildID:   ic.GuildID,
		ChannelID: ic.ChannelID,
	}
	if ic.Member != nil && ic.Member.User != nil {
		i.UserID = ic.Member.User.ID
		i.Username = ic.Member.User.Username
		i.IsAdmin = ic.Member.Permissions&discordgo.PermissionAdministrator != 0
	}

	switch ic.Type {
	case discordgo.InteractionMessageComponent:
		i.ControlID = ic.MessageComponentData().CustomID
	case discordgo.InteractionApplicationCommand:
		i.Command = ic.ApplicationCommandData().Name
	default:
		return
	}

	if err := handler(ctx, i); err != nil {
		log.Printf("discord: interaction handler: %v", err)
	}
}

func (a *Adapter) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, handler := a.messageHandler()
	if handler == nil || ctx.Err() != nil {
		return
	}
	if m.Author == nil || m.Author.Bot {
		return
	}

	i := domain.Interaction{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
	}
	if perms, err := s.State.MessagePermissions(m.Message); err == nil {
		i.IsAdmin = perms&discordgo.PermissionAdministrator != 0
	}

	if err := handler(ctx, i, m.Content); err != nil {
		log.Printf("discord: message handler: %v", err)
	}
}

func (a *Adapter) interactionHandler() (context.Context, InteractionHandler) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.handlerCtx(), a.onInteraction
}

func (a *Adapter) messageHandler() (context.Context, MessageHandler) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.handlerCtx(), a.onMessage
}

func (a *Adapter) handlerCtx() context.Context {
	if a.ctx != nil {
		return a.ctx
	}
	return context.Background()
}
