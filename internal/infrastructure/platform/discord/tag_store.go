package discordinfra

import (
	"context"
	"fmt"

	"guildBot/internal/domain"
)

// MemberTags reads the member's current roles from the platform; the
// platform stays the single source of truth for tag membership.
func (s *Service) MemberTags(ctx context.Context, guildID, userID string) ([]domain.TagName, error) {
	member, err := s.session.GuildMember(guildID, userID, withContext(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("discord: GuildMember: %w", err)
	}

	// Prime the cache so role IDs can be mapped back to names.
	s.mu.RLock()
	_, cached := s.roles[guildID]
	s.mu.RUnlock()
	if !cached {
		if err := s.refreshRoles(guildID); err != nil {
			return nil, err
		}
	}

	var out []domain.TagName
	for _, roleID := range member.Roles {
		if name, ok := s.roleName(guildID, roleID); ok {
			out = append(out, name)
		}
	}
	return out, nil
}

func (s *Service) AddTag(ctx context.Context, guildID, userID string, tag domain.TagName) error {
	roleID, err := s.roleID(guildID, tag)
	if err != nil {
		return err
	}
	if err := s.session.GuildMemberRoleAdd(guildID, userID, roleID, withContext(ctx)...); err != nil {
		return fmt.Errorf("discord: GuildMemberRoleAdd: %w", err)
	}
	return nil
}

func (s *Service) RemoveTags(ctx context.Context, guildID, userID string, tags ...domain.TagName) error {
	for _, tag := range tags {
		roleID, err := s.roleID(guildID, tag)
		if err != nil {
			return err
		}
		if err := s.session.GuildMemberRoleRemove(guildID, userID, roleID, withContext(ctx)...); err != nil {
			return fmt.Errorf("discord: GuildMemberRoleRemove: %w", err)
		}
	}
	return nil
}

func (s *Service) Mention(_ context.Context, guildID string, tag domain.TagName) (string, error) {
	roleID, err := s.roleID(guildID, tag)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<@&%s>", roleID), nil
}
