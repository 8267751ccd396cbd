package tags

import (
	"context"
	"fmt"
	"sync"

	"guildBot/internal/domain"
)

// Engine applies toggle semantics against the platform tag store.
// Toggles are serialized per (guild, user): two rapid presses by the
// same member cannot interleave their read-compute-mutate sequences,
// while presses by different members proceed concurrently.
type Engine struct {
	store domain.TagStore

	mu    sync.Mutex
	users map[string]*sync.Mutex
}

func NewEngine(store domain.TagStore) *Engine {
	return &Engine{
		store: store,
		users: make(map[string]*sync.Mutex),
	}
}

// Toggle flips tag membership for one member.
//
// Exclusive group: every other held tag of the group is removed; if
// the requested tag was already held it is removed too and the net
// outcome is Removed, otherwise it is added. Non-exclusive group:
// only the requested tag changes. Exactly one mutation batch is
// issued per call (removals, then at most one addition).
func (e *Engine) Toggle(ctx context.Context, guildID, userID string, tag domain.TagName, group *domain.TagGroup) (domain.Outcome, error) {
	if !group.Contains(tag) {
		return "", fmt.Errorf("%w: %q in group %q", domain.ErrUnknownTag, tag, group.Name)
	}

	lock := e.userLock(guildID + "/" + userID)
	lock.Lock()
	defer lock.Unlock()

	held, err := e.store.MemberTags(ctx, guildID, userID)
	if err != nil {
		return "", fmt.Errorf("%w: read member tags: %v", domain.ErrTagStore, err)
	}

	heldSet := make(map[domain.TagName]struct{}, len(held))
	for _, t := range held {
		heldSet[t] = struct{}{}
	}
	_, hasRequested := heldSet[tag]

	var removals []domain.TagName
	if group.Exclusive {
		for _, member := range group.Members {
			if _, ok := heldSet[member]; ok {
				removals = append(removals, member)
			}
		}
	} else if hasRequested {
		removals = []domain.TagName{tag}
	}

	if len(removals) > 0 {
		if err := e.store.RemoveTags(ctx, guildID, userID, removals...); err != nil {
			return "", fmt.Errorf("%w: remove tags: %v", domain.ErrTagStore, err)
		}
	}

	if hasRequested {
		return domain.OutcomeRemoved, nil
	}

	if err := e.store.AddTag(ctx, guildID, userID, tag); err != nil {
		return "", fmt.Errorf("%w: add tag: %v", domain.ErrTagStore, err)
	}
	return domain.OutcomeAdded, nil
}

func (e *Engine) userLock(key string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	lock, ok := e.users[key]
	if !ok {
		lock = &sync.Mutex{}
		e.users[key] = lock
	}
	return lock
}
