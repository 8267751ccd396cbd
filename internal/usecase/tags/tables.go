package tags

import "guildBot/internal/domain"

// Group names referenced by the selector commands and the loops.
const (
	GroupRank     = "rank"
	GroupRegion   = "region"
	GroupAge      = "age"
	GroupPronouns = "pronouns"
	GroupDaily    = "daily"
	GroupLive     = "live"
)

// DailyPingTag is mentioned by the midnight announcement.
const DailyPingTag domain.TagName = "Daily Ping"

// LivePingTag is mentioned when the game server comes up.
const LivePingTag domain.TagName = "Live Ping"

// DefaultGroups is the static tag-group table. Role names must match
// the guild's roles exactly; the bot never creates roles itself.
func DefaultGroups() []*domain.TagGroup {
	return []*domain.TagGroup{
		{
			Name:      GroupRank,
			Members:   []domain.TagName{"Iron", "Gold", "Diamond", "Netherite"},
			Exclusive: true,
		},
		{
			Name:      GroupRegion,
			Members:   []domain.TagName{"NA", "EU", "Asia", "Oceania"},
			Exclusive: true,
		},
		{
			Name:      GroupAge,
			Members:   []domain.TagName{"13-15", "16-17", "18+"},
			Exclusive: true,
		},
		{
			Name:      GroupPronouns,
			Members:   []domain.TagName{"he/him", "she/her", "they/them", "any pronouns"},
			Exclusive: false,
		},
		{
			Name:      GroupDaily,
			Members:   []domain.TagName{DailyPingTag},
			Exclusive: false,
		},
		{
			Name:      GroupLive,
			Members:   []domain.TagName{LivePingTag},
			Exclusive: false,
		},
	}
}
