package tags

import (
	"fmt"
	"strings"

	"guildBot/internal/domain"
)

// Registry maps stable control IDs to their tag bindings. It is built
// once at startup from the static group tables and read-only after
// that, so old selector messages keep working across restarts.
type Registry struct {
	groups   []*domain.TagGroup
	controls map[string]domain.InteractiveControl
}

func NewRegistry(groups []*domain.TagGroup) *Registry {
	r := &Registry{
		groups:   groups,
		controls: make(map[string]domain.InteractiveControl),
	}
	for _, g := range groups {
		for _, tag := range g.Members {
			ctl := domain.InteractiveControl{
				ID:    ControlID(g.Name, tag),
				Label: string(tag),
				Tag:   tag,
				Group: g,
			}
			r.controls[ctl.ID] = ctl
		}
	}
	return r
}

// ControlID derives the persistent button ID for a tag. Changing this
// scheme orphans every button already posted.
func ControlID(group string, tag domain.TagName) string {
	slug := strings.ToLower(string(tag))
	slug = strings.NewReplacer(" ", "-", "/", "-", "+", "plus").Replace(slug)
	return fmt.Sprintf("tag:%s:%s", strings.ToLower(group), slug)
}

// Control resolves a button ID to its binding.
func (r *Registry) Control(id string) (domain.InteractiveControl, error) {
	ctl, ok := r.controls[id]
	if !ok {
		return domain.InteractiveControl{}, fmt.Errorf("%w: %s", domain.ErrUnknownControl, id)
	}
	return ctl, nil
}

// Group looks a group up by name.
func (r *Registry) Group(name string) (*domain.TagGroup, bool) {
	for _, g := range r.groups {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// Controls returns the controls of one group in member order.
func (r *Registry) Controls(group *domain.TagGroup) []domain.InteractiveControl {
	out := make([]domain.InteractiveControl, 0, len(group.Members))
	for _, tag := range group.Members {
		out = append(out, r.controls[ControlID(group.Name, tag)])
	}
	return out
}

// Groups returns every registered group.
func (r *Registry) Groups() []*domain.TagGroup {
	return r.groups
}
