package discordinfra

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"guildBot/internal/domain"
)

const buttonsPerRow = 5

func (s *Service) Send(ctx context.Context, channelID, text string) error {
	if _, err := s.session.ChannelMessageSend(channelID, text, withContext(ctx)...); err != nil {
		return fmt.Errorf("discord: ChannelMessageSend: %w", err)
	}
	return nil
}

func (s *Service) SendEmbed(ctx context.Context, channelID string, embed domain.Embed) (string, error) {
	msg, err := s.session.ChannelMessageSendEmbed(channelID, buildEmbed(embed), withContext(ctx)...)
	if err != nil {
		return "", fmt.Errorf("discord: ChannelMessageSendEmbed: %w", err)
	}
	return msg.ID, nil
}

// SendSelector posts the selector embed with one button per control.
// Button CustomIDs are the stable control IDs, so the buttons keep
// working after a restart without touching the message.
func (s *Service) SendSelector(ctx context.Context, channelID string, embed domain.Embed, controls []domain.InteractiveControl) error {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(controls); start += buttonsPerRow {
		end := start + buttonsPerRow
		if end > len(controls) {
			end = len(controls)
		}
		row := discordgo.ActionsRow{}
		for _, ctl := range controls[start:end] {
			row.Components = append(row.Components, discordgo.Button{
				Label:    ctl.Label,
				Style:    discordgo.SecondaryButton,
				CustomID: ctl.ID,
			})
		}
		rows = append(rows, row)
	}

	_, err := s.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{buildEmbed(embed)},
		Components: rows,
	}, withContext(ctx)...)
	if err != nil {
		return fmt.Errorf("discord: ChannelMessageSendComplex: %w", err)
	}
	return nil
}

func (s *Service) React(ctx context.Context, channelID, messageID, emoji string) error {
	if err := s.session.MessageReactionAdd(channelID, messageID, emoji, withContext(ctx)...); err != nil {
		return fmt.Errorf("discord: MessageReactionAdd: %w", err)
	}
	return nil
}

func buildEmbed(e domain.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
	if e.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}
	if e.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.Image}
	}
	if e.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}
	return embed
}

func withContext(ctx context.Context) []discordgo.RequestOption {
	if ctx == nil {
		return nil
	}
	return []discordgo.RequestOption{discordgo.WithContext(ctx)}
}
