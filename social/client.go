// Package social posts approved articles to X. The OAuth handshake is a
// one-time manual step whose access token is persisted to a local JSON
// file; the client loads it once at construction and reuses the signed
// session for the process lifetime.
package social

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dghubble/oauth1"

	"newsroom/config"
)

const tweetEndpoint = "https://api.twitter.com/2/tweets"

type storedToken struct {
	OAuthToken       string `json:"oauth_token"`
	OAuthTokenSecret string `json:"oauth_token_secret"`
}

type Client struct {
	httpClient *http.Client
}

// New builds the client from the consumer credentials and the persisted
// access token. A missing token file or missing consumer keys yields a
// disabled client whose Post reports the problem; callers treat that as
// any other best-effort failure.
func New(cfg config.SocialConfig) *Client {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return &Client{}
	}

	data, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return &Client{}
	}
	var token storedToken
	if err := json.Unmarshal(data, &token); err != nil {
		return &Client{}
	}
	if token.OAuthToken == "" || token.OAuthTokenSecret == "" {
		return &Client{}
	}

	oauthCfg := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	httpClient := oauthCfg.Client(oauth1.NoContext, oauth1.NewToken(token.OAuthToken, token.OAuthTokenSecret))
	httpClient.Timeout = 10 * time.Second

	return &Client{httpClient: httpClient}
}

func (c *Client) Post(text string) error {
	if c.httpClient == nil {
		return fmt.Errorf("social client not configured")
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(tweetEndpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("post returned status %d", resp.StatusCode)
	}
	return nil
}
