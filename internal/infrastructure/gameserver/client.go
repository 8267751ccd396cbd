// Package gameserver queries a Minecraft server's public status
// through the mcsrvstat JSON API.
package gameserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"guildBot/internal/domain"
)

const defaultBaseURL = "https://api.mcsrvstat.us/2"

type Client struct {
	http    *http.Client
	baseURL string
	host    string
}

type statusResponse struct {
	Online  bool `json:"online"`
	Players struct {
		Online int      `json:"online"`
		Max    int      `json:"max"`
		List   []string `json:"list"`
	} `json:"players"`
	Version string `json:"version"`
}

func NewClient(host string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		host:    host,
	}
}

// Status fetches the current up/down state and player list.
func (c *Client) Status(ctx context.Context) (domain.ServerStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+c.host, nil)
	if err != nil {
		return domain.ServerStatus{}, fmt.Errorf("gameserver: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ServerStatus{}, fmt.Errorf("gameserver: query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return domain.ServerStatus{}, fmt.Errorf("gameserver: status api returned %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.ServerStatus{}, fmt.Errorf("gameserver: decode: %w", err)
	}

	return domain.ServerStatus{
		Online:  body.Online,
		Players: body.Players.List,
	}, nil
}
