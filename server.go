package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-tablegraph/ajax"
	"github.com/andareed/siftly-tablegraph/logging"
)

type suggestionsMsg struct {
	funcs []string
	err   error
}

// fetchSuggestions loads the links table and then the query function list.
func fetchSuggestions(cache *ajax.LinksCache, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		client, err := cache.Client(ctx)
		if err != nil {
			return suggestionsMsg{err: fmt.Errorf("load links: %w", err)}
		}
		funcs, err := client.Suggestions(ctx)
		if err != nil {
			return suggestionsMsg{err: err}
		}
		return suggestionsMsg{funcs: funcs}
	}
}

func (m *model) handleSuggestions(msg suggestionsMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("suggestions: %v", msg.err)
		text := "Server unavailable, using built-in functions"
		var rerr *ajax.ResponseError
		if errors.As(msg.err, &rerr) && rerr.StatusCode() != 0 {
			text = fmt.Sprintf("Server returned %d, using built-in functions", rerr.StatusCode())
		}
		return m.startNotice(text, "warn", noticeDuration)
	}
	if len(msg.funcs) == 0 {
		return m.startNotice("Server offered no functions", "warn", noticeDuration)
	}
	m.timeMachine.SetFuncs(msg.funcs)
	logging.Infof("suggestions: %d functions from server", len(msg.funcs))
	return m.startNotice(fmt.Sprintf("%d functions loaded from server", len(msg.funcs)), "success", noticeDuration)
}
