package ajax

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Suggestion is one query function offered by the backend.
type Suggestion struct {
	Name   string            `json:"name"`
	Params map[string]string `json:"params"`
}

// Suggestions loads the function names the query editor may offer.
func (c *Client) Suggestions(ctx context.Context) ([]string, error) {
	if c.links == nil || c.links.IFQL.Suggestions == "" {
		return nil, errors.New("ajax: backend has no ifql suggestions link")
	}
	resp, err := c.Do(ctx, Request{URL: c.links.IFQL.Suggestions}, RequestOptions{})
	if err != nil {
		return nil, err
	}
	var raw []Suggestion
	if err := resp.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if name := strings.TrimSpace(s.Name); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}
