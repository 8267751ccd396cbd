package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guildBot/internal/domain"
)

func TestRegistryResolvesStableIDs(t *testing.T) {
	registry := NewRegistry(DefaultGroups())

	ctl, err := registry.Control("tag:rank:gold")
	require.NoError(t, err)
	assert.Equal(t, domain.TagName("Gold"), ctl.Tag)
	assert.Equal(t, GroupRank, ctl.Group.Name)
	assert.True(t, ctl.Group.Exclusive)
}

func TestRegistryUnknownControl(t *testing.T) {
	registry := NewRegistry(DefaultGroups())

	_, err := registry.Control("tag:rank:emerald")
	assert.ErrorIs(t, err, domain.ErrUnknownControl)
}

func TestControlIDSlugging(t *testing.T) {
	assert.Equal(t, "tag:pronouns:he-him", ControlID(GroupPronouns, "he/him"))
	assert.Equal(t, "tag:age:18plus", ControlID(GroupAge, "18+"))
	assert.Equal(t, "tag:daily:daily-ping", ControlID(GroupDaily, DailyPingTag))
}

func TestRegistryControlsPreserveMemberOrder(t *testing.T) {
	registry := NewRegistry(DefaultGroups())
	group, ok := registry.Group(GroupRegion)
	require.True(t, ok)

	controls := registry.Controls(group)
	require.Len(t, controls, len(group.Members))
	for i, ctl := range controls {
		assert.Equal(t, group.Members[i], ctl.Tag)
	}
}
