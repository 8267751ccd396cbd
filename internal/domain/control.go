package domain

// InteractiveControl binds a persistent button to one tag toggle. The
// ID is stable across restarts so buttons on old selector messages
// keep working; it is derived from the group and tag names, never
// generated at random.
type InteractiveControl struct {
	ID    string
	Label string
	Tag   TagName
	Group *TagGroup
}
