package tags

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildBot/internal/domain"
)

type fakeStore struct {
	tags map[string]map[domain.TagName]struct{}

	removeBatches int
	addCalls      int
	failMutations bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{tags: make(map[string]map[domain.TagName]struct{})}
}

func (f *fakeStore) key(guildID, userID string) string { return guildID + "/" + userID }

func (f *fakeStore) MemberTags(_ context.Context, guildID, userID string) ([]domain.TagName, error) {
	var out []domain.TagName
	for t := range f.tags[f.key(guildID, userID)] {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) AddTag(_ context.Context, guildID, userID string, tag domain.TagName) error {
	if f.failMutations {
		return errors.New("api down")
	}
	f.addCalls++
	key := f.key(guildID, userID)
	if f.tags[key] == nil {
		f.tags[key] = make(map[domain.TagName]struct{})
	}
	f.tags[key][tag] = struct{}{}
	return nil
}

func (f *fakeStore) RemoveTags(_ context.Context, guildID, userID string, tags ...domain.TagName) error {
	if f.failMutations {
		return errors.New("api down")
	}
	f.removeBatches++
	for _, t := range tags {
		delete(f.tags[f.key(guildID, userID)], t)
	}
	return nil
}

func (f *fakeStore) Mention(_ context.Context, _ string, tag domain.TagName) (string, error) {
	return "@" + string(tag), nil
}

func (f *fakeStore) held(guildID, userID string, group *domain.TagGroup) []domain.TagName {
	var out []domain.TagName
	for _, m := range group.Members {
		if _, ok := f.tags[f.key(guildID, userID)][m]; ok {
			out = append(out, m)
		}
	}
	return out
}

func exclusiveGroup() *domain.TagGroup {
	return &domain.TagGroup{
		Name:      "rank",
		Members:   []domain.TagName{"Iron", "Gold", "Diamond"},
		Exclusive: true,
	}
}

func pronounGroup() *domain.TagGroup {
	return &domain.TagGroup{
		Name:    "pronouns",
		Members: []domain.TagName{"he/him", "she/her", "they/them"},
	}
}

func TestToggleExclusiveAddsWhenEmpty(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	group := exclusiveGroup()

	outcome, err := engine.Toggle(context.Background(), "g", "u", "Gold", group)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdded, outcome)
	assert.Equal(t, []domain.TagName{"Gold"}, store.held("g", "u", group))
	assert.Equal(t, 0, store.removeBatches)
	assert.Equal(t, 1, store.addCalls)
}

func TestToggleExclusiveSwitchesChoice(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	group := exclusiveGroup()
	ctx := context.Background()

	_, err := engine.Toggle(ctx, "g", "u", "Iron", group)
	require.NoError(t, err)

	outcome, err := engine.Toggle(ctx, "g", "u", "Diamond", group)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAdded, outcome)
	assert.Equal(t, []domain.TagName{"Diamond"}, store.held("g", "u", group))
	assert.Equal(t, 1, store.removeBatches, "switching issues exactly one removal batch")
	assert.Equal(t, 2, store.addCalls)
}

func TestToggleExclusiveOffLeavesGroupEmpty(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	group := exclusiveGroup()
	ctx := context.Background()

	_, err := engine.Toggle(ctx, "g", "u", "Gold", group)
	require.NoError(t, err)

	outcome, err := engine.Toggle(ctx, "g", "u", "Gold", group)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRemoved, outcome)
	assert.Empty(t, store.held("g", "u", group))
}

func TestToggleExclusiveInvariantUnderSequence(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	group := exclusiveGroup()
	ctx := context.Background()

	presses := []domain.TagName{"Iron", "Gold", "Gold", "Diamond", "Iron", "Iron", "Gold"}
	for _, tag := range presses {
		_, err := engine.Toggle(ctx, "g", "u", tag, group)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(store.held("g", "u", group)), 1,
			"at most one exclusive tag held after pressing %s", tag)
	}
}

func TestToggleNonExclusiveOnlyTouchesRequestedTag(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)
	group := pronounGroup()
	ctx := context.Background()

	_, err := engine.Toggle(ctx, "g", "u", "she/her", group)
	require.NoError(t, err)
	_, err = engine.Toggle(ctx, "g", "u", "they/them", group)
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.TagName{"she/her", "they/them"}, store.held("g", "u", group))

	outcome, err := engine.Toggle(ctx, "g", "u", "she/her", group)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRemoved, outcome)
	assert.Equal(t, []domain.TagName{"they/them"}, store.held("g", "u", group))
}

func TestToggleUnknownTag(t *testing.T) {
	engine := NewEngine(newFakeStore())

	_, err := engine.Toggle(context.Background(), "g", "u", "Emerald", exclusiveGroup())
	assert.ErrorIs(t, err, domain.ErrUnknownTag)
}

func TestToggleStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failMutations = true
	engine := NewEngine(store)

	_, err := engine.Toggle(context.Background(), "g", "u", "Gold", exclusiveGroup())
	assert.ErrorIs(t, err, domain.ErrTagStore)
}
