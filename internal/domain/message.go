package domain

// Interaction is one inbound activation: a button press, a slash
// command or a prefixed text command, normalized by the adapter.
type Interaction struct {
	ID    string
	Token string

	GuildID   string
	ChannelID string
	UserID    string
	Username  string

	// ControlID is set for button presses, Command for commands.
	ControlID string
	Command   string
	Args      []string

	IsAdmin bool
}

// Embed is a rich outbound message.
type Embed struct {
	Title       string
	Description string
	Color       int
	Thumbnail   string
	Image       string
	Footer      string
}
