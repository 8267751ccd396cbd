// Package discordinfra implements the domain ports over the Discord
// REST API.
package discordinfra

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"guildBot/internal/domain"
)

// Service wraps a discordgo session and caches the guild's role
// name→ID mapping. The cache is refreshed once on a miss, so a role
// created after startup is picked up on first use.
type Service struct {
	session *discordgo.Session

	mu    sync.RWMutex
	roles map[string]map[domain.TagName]string
}

func NewService(session *discordgo.Session) *Service {
	return &Service{
		session: session,
		roles:   make(map[string]map[domain.TagName]string),
	}
}

func (s *Service) roleID(guildID string, tag domain.TagName) (string, error) {
	s.mu.RLock()
	id, ok := s.roles[guildID][tag]
	s.mu.RUnlock()
	if ok {
		return id, nil
	}

	if err := s.refreshRoles(guildID); err != nil {
		return "", err
	}

	s.mu.RLock()
	id, ok = s.roles[guildID][tag]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("discord: no role named %q in guild %s", tag, guildID)
	}
	return id, nil
}

func (s *Service) roleName(guildID, roleID string) (domain.TagName, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for name, id := range s.roles[guildID] {
		if id == roleID {
			return name, true
		}
	}
	return "", false
}

func (s *Service) refreshRoles(guildID string) error {
	roles, err := s.session.GuildRoles(guildID)
	if err != nil {
		return fmt.Errorf("discord: GuildRoles: %w", err)
	}

	byName := make(map[domain.TagName]string, len(roles))
	for _, role := range roles {
		byName[domain.TagName(role.Name)] = role.ID
	}

	s.mu.Lock()
	s.roles[guildID] = byName
	s.mu.Unlock()
	return nil
}
