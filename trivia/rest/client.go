package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client provides REST API access to the trivia game service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new REST API client.
// baseURL should be the base URL of the service, e.g. "http://localhost:8000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient allows setting a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// User endpoints

// CreateUser creates a user. Temporary users carry a caller-minted id in
// DisplayName flows; the service returns the canonical record.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var resp User
	if err := c.post(ctx, "/users", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateUser changes a user's display name.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	var resp User
	if err := c.put(ctx, "/users/"+url.PathEscape(userID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Pack endpoints

// ListPacks returns the available question packs.
func (c *Client) ListPacks(ctx context.Context) ([]Pack, error) {
	var resp []Pack
	if err := c.get(ctx, "/packs", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Game endpoints

// CreateGame creates a new game session and returns it, including the join
// code to share with other players.
func (c *Client) CreateGame(ctx context.Context, req CreateGameRequest) (*Game, error) {
	var resp Game
	if err := c.post(ctx, "/games", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// JoinGame joins an existing session by its short code.
func (c *Client) JoinGame(ctx context.Context, req JoinGameRequest) (*Game, error) {
	var resp Game
	if err := c.post(ctx, "/games/join", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListParticipants returns the players currently in a session. Waiting-room
// screens poll this between WebSocket roster events.
func (c *Client) ListParticipants(ctx context.Context, gameID string) (*ParticipantsResponse, error) {
	var resp ParticipantsResponse
	if err := c.get(ctx, "/games/"+url.PathEscape(gameID)+"/participants", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StartGame begins the question flow. Only the host may call it.
func (c *Client) StartGame(ctx context.Context, gameID string, req StartGameRequest) (*Game, error) {
	var resp Game
	if err := c.post(ctx, "/games/"+url.PathEscape(gameID)+"/start", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitAnswer records a player's answer to the current question.
func (c *Client) SubmitAnswer(ctx context.Context, gameID string, req SubmitAnswerRequest) (*SubmitAnswerResponse, error) {
	var resp SubmitAnswerResponse
	if err := c.post(ctx, "/games/"+url.PathEscape(gameID)+"/answers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Helper methods

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	return c.send(ctx, http.MethodPost, path, body, dest)
}

func (c *Client) put(ctx context.Context, path string, body, dest any) error {
	return c.send(ctx, http.MethodPut, path, body, dest)
}

func (c *Client) send(ctx context.Context, method, path string, body, dest any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, dest)
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			return &APIError{StatusCode: resp.StatusCode, Detail: errResp.Detail}
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: string(body)}
	}

	if dest != nil {
		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
