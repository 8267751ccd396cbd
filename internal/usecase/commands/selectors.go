package commands

import (
	"context"
	"fmt"

	"guildBot/internal/domain"
	"guildBot/internal/usecase/tags"
)

// SelectorCommand posts a role-selector message: an embed explaining
// the group plus one persistent button per tag. The same type backs
// every selector; only the group and copy differ.
type SelectorCommand struct {
	name        string
	groupName   string
	title       string
	description string
	color       int
	registry    *tags.Registry
}

func (c *SelectorCommand) Name() string { return c.name }

func (c *SelectorCommand) Aliases() []string { return nil }

func (c *SelectorCommand) AdminOnly() bool { return true }

func (c *SelectorCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	group, ok := c.registry.Group(c.groupName)
	if !ok {
		return fmt.Errorf("%w: group %q", domain.ErrUnknownControl, c.groupName)
	}

	embed := domain.Embed{
		Title:       c.title,
		Description: c.description,
		Color:       c.color,
	}
	if err := cmdCtx.Out.SendSelector(ctx, cmdCtx.Interaction.ChannelID, embed, c.registry.Controls(group)); err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, "Selector posted.")
}

func NewRankSelectorCommand(registry *tags.Registry) *SelectorCommand {
	return &SelectorCommand{
		name:        "rankroles",
		groupName:   tags.GroupRank,
		title:       "Pick your rank",
		description: "Press a button to claim your in-game rank. Picking a new one replaces the old; pressing your current rank removes it.",
		color:       0x3498db,
		registry:    registry,
	}
}

func NewRegionSelectorCommand(registry *tags.Registry) *SelectorCommand {
	return &SelectorCommand{
		name:        "regionroles",
		groupName:   tags.GroupRegion,
		title:       "Where do you play from?",
		description: "Pick one region. Pressing a new region replaces your current one.",
		color:       0x2ecc71,
		registry:    registry,
	}
}

func NewAgeSelectorCommand(registry *tags.Registry) *SelectorCommand {
	return &SelectorCommand{
		name:        "ageroles",
		groupName:   tags.GroupAge,
		title:       "Age group",
		description: "Pick the bracket that matches you. One at a time.",
		color:       0x9b59b6,
		registry:    registry,
	}
}

func NewPronounSelectorCommand(registry *tags.Registry) *SelectorCommand {
	return &SelectorCommand{
		name:        "pronounroles",
		groupName:   tags.GroupPronouns,
		title:       "Pronouns",
		description: "Toggle as many as apply. Press again to remove.",
		color:       0xf1c40f,
		registry:    registry,
	}
}

func NewDailyPingSelectorCommand(registry *tags.Registry) *SelectorCommand {
	return &SelectorCommand{
		name:        "dailyping",
		groupName:   tags.GroupDaily,
		title:       "Daily announcement",
		description: "Opt in to get pinged for the daily midnight announcement.",
		color:       0x1abc9c,
		registry:    registry,
	}
}

func NewLivePingSelectorCommand(registry *tags.Registry) *SelectorCommand {
	return &SelectorCommand{
		name:        "liveping",
		groupName:   tags.GroupLive,
		title:       "Server online alerts",
		description: "Opt in to get pinged when the game server comes online.",
		color:       0xe67e22,
		registry:    registry,
	}
}
