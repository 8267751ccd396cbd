// Package hosting drives the Aternos hosting panel: log in with the
// account credentials, then ask it to start the server. The panel has
// no official API; this client speaks the same form endpoints the web
// UI does and treats anything but a 2xx as failure.
package hosting

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://aternos.org"

type Client struct {
	http    *http.Client
	baseURL string
	user    string
	pass    string
}

func NewClient(user, pass string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("aternos: cookie jar: %w", err)
	}
	return &Client{
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		baseURL: defaultBaseURL,
		user:    user,
		pass:    pass,
	}, nil
}

// StartServer logs in and issues the start action. The session cookie
// lives in the jar; a stale session simply fails the start call and
// the next invocation logs in again.
func (c *Client) StartServer(ctx context.Context) error {
	if err := c.login(ctx); err != nil {
		return err
	}
	return c.postForm(ctx, "/panel/ajax/start.php", url.Values{})
}

func (c *Client) login(ctx context.Context) error {
	form := url.Values{
		"user":     {c.user},
		"password": {c.pass},
	}
	return c.postForm(ctx, "/panel/ajax/account/login.php", form)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("aternos: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("aternos: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("aternos: %s returned %d", path, resp.StatusCode)
	}
	return nil
}
