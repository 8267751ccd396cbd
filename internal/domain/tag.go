package domain

// TagName is a platform role used as a membership marker.
type TagName string

// TagGroup is a named set of related tags. Exclusive groups allow at
// most one held tag per member; non-exclusive groups allow any subset.
// Groups are defined at startup and never mutated afterwards.
type TagGroup struct {
	Name      string
	Members   []TagName
	Exclusive bool
}

// Contains reports whether tag is one of the group members.
func (g *TagGroup) Contains(tag TagName) bool {
	for _, m := range g.Members {
		if m == tag {
			return true
		}
	}
	return false
}

// Outcome describes the net effect of a toggle.
type Outcome string

const (
	OutcomeAdded   Outcome = "added"
	OutcomeRemoved Outcome = "removed"
)
