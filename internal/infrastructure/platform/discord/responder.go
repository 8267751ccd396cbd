package discordinfra

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"guildBot/internal/domain"
)

// Respond answers an interaction with an ephemeral message, visible
// only to the invoking user. Activations that arrived as plain chat
// messages carry no interaction token; those get a channel reply
// addressed to the user instead.
func (s *Service) Respond(ctx context.Context, i domain.Interaction, text string) error {
	if i.ID == "" || i.Token == "" {
		return s.Send(ctx, i.ChannelID, fmt.Sprintf("<@%s> %s", i.UserID, text))
	}

	err := s.session.InteractionRespond(&discordgo.Interaction{ID: i.ID, Token: i.Token}, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, withContext(ctx)...)
	if err != nil {
		return fmt.Errorf("discord: InteractionRespond: %w", err)
	}
	return nil
}
