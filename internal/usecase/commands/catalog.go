package commands

// CommandDescriptor carries the metadata the adapter needs to publish
// each command as a platform slash command.
type CommandDescriptor struct {
	Name        string
	Description string
	AdminOnly   bool
}

// BuiltinCommandCatalog describes the commands the bot registers on
// startup. Names must match the Command implementations.
func BuiltinCommandCatalog() []CommandDescriptor {
	return []CommandDescriptor{
		{
			Name:        "rules",
			Description: "Post the server rules message in this channel.",
			AdminOnly:   true,
		},
		{
			Name:        "rankroles",
			Description: "Post the rank role selector in this channel.",
			AdminOnly:   true,
		},
		{
			Name:        "regionroles",
			Description: "Post the region role selector in this channel.",
			AdminOnly:   true,
		},
		{
			Name:        "ageroles",
			Description: "Post the age role selector in this channel.",
			AdminOnly:   true,
		},
		{
			Name:        "pronounroles",
			Description: "Post the pronoun role selector in this channel.",
			AdminOnly:   true,
		},
		{
			Name:        "dailyping",
			Description: "Post the daily announcement opt-in selector.",
			AdminOnly:   true,
		},
		{
			Name:        "liveping",
			Description: "Post the server-online opt-in selector.",
			AdminOnly:   true,
		},
		{
			Name:        "startserver",
			Description: "Ask the hosting account to start the game server.",
			AdminOnly:   true,
		},
	}
}
