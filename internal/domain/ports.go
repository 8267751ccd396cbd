package domain

import "context"

// TagStore reads and mutates tag assignments on the platform. The
// platform is the only source of truth; nothing here is cached beyond
// a single toggle operation.
type TagStore interface {
	MemberTags(ctx context.Context, guildID, userID string) ([]TagName, error)
	AddTag(ctx context.Context, guildID, userID string, tag TagName) error
	RemoveTags(ctx context.Context, guildID, userID string, tags ...TagName) error
	// Mention returns the platform mention string for a tag.
	Mention(ctx context.Context, guildID string, tag TagName) (string, error)
}

// MessageSender posts outbound messages to channels.
type MessageSender interface {
	Send(ctx context.Context, channelID, text string) error
	// SendEmbed returns the posted message's ID so callers can react
	// to it.
	SendEmbed(ctx context.Context, channelID string, embed Embed) (string, error)
	// SendSelector posts an embed followed by one button per control.
	SendSelector(ctx context.Context, channelID string, embed Embed, controls []InteractiveControl) error
	React(ctx context.Context, channelID, messageID, emoji string) error
}

// Responder delivers a reply visible only to the user who activated
// an interaction (or to the channel, for plain text commands).
type Responder interface {
	Respond(ctx context.Context, i Interaction, text string) error
}
