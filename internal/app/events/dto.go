package events

// InteractionDTO is published after a tag toggle succeeds.
type InteractionDTO struct {
	Username  string `json:"username"`
	ControlID string `json:"control_id"`
	Outcome   string `json:"outcome"`
}

// AnnouncementDTO is published when the daily announcement fires.
type AnnouncementDTO struct {
	Date string `json:"date"`
}

// ServerStateDTO is published on an up/down transition of the
// monitored game server.
type ServerStateDTO struct {
	Online  bool `json:"online"`
	Players int  `json:"players"`
}

// ServerPlayerDTO is published once per observed join or leave.
type ServerPlayerDTO struct {
	Player string `json:"player"`
	Event  string `json:"event"` // "joined" or "left"
}

// ErrorDTO is published for unexpected failures worth surfacing.
type ErrorDTO struct {
	Source string `json:"source"`
	Detail string `json:"detail"`
}
