package commands

import (
	"context"
	"log"

	"guildBot/internal/domain"
)

type RulesCommand struct{}

func NewRulesCommand() *RulesCommand {
	return &RulesCommand{}
}

func (c *RulesCommand) Name() string { return "rules" }

func (c *RulesCommand) Aliases() []string { return nil }

func (c *RulesCommand) AdminOnly() bool { return true }

func (c *RulesCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	embed := domain.Embed{
		Title: "Server Rules",
		Description: "1. Be respectful. No harassment, slurs or personal attacks.\n" +
			"2. No spam, advertising or unsolicited DMs.\n" +
			"3. Keep content in the right channels.\n" +
			"4. No cheating, griefing or exploiting on the game server.\n" +
			"5. Listen to the moderators. Their call is final.\n\n" +
			"Breaking the rules gets you warned, muted or banned.",
		Color:  0xe74c3c,
		Footer: "Pick your roles in the selector channels below.",
	}
	messageID, err := cmdCtx.Out.SendEmbed(ctx, cmdCtx.Interaction.ChannelID, embed)
	if err != nil {
		return err
	}
	// Members acknowledge the rules by clicking the seeded reaction.
	if err := cmdCtx.Out.React(ctx, cmdCtx.Interaction.ChannelID, messageID, "✅"); err != nil {
		log.Printf("commands: seed rules reaction: %v", err)
	}
	return cmdCtx.Reply(ctx, "Rules posted.")
}
