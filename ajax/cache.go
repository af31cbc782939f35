package ajax

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/andareed/siftly-tablegraph/logging"
)

// DefaultLinksPath is where the backend serves its links table.
const DefaultLinksPath = "/chronograf/v1"

// LinksCache fetches the links table once and keeps it for the lifetime of
// the process. Concurrent first callers share one request.
type LinksCache struct {
	client *Client
	path   string

	group singleflight.Group
	mu    sync.RWMutex
	links *Links
}

func NewLinksCache(client *Client, path string) *LinksCache {
	if path == "" {
		path = DefaultLinksPath
	}
	return &LinksCache{client: client, path: path}
}

// Cached returns the links if they have been fetched.
func (lc *LinksCache) Cached() *Links {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return lc.links
}

// Load returns the cached links, fetching them on first use. The fetch is
// shared by concurrent callers and is not tied to any one of them: ctx only
// bounds how long this caller waits, the fetch itself is bounded by the
// client timeout.
func (lc *LinksCache) Load(ctx context.Context) (*Links, error) {
	if l := lc.Cached(); l != nil {
		return l, nil
	}

	ch := lc.group.DoChan(lc.path, func() (any, error) {
		if l := lc.Cached(); l != nil {
			return l, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lc.client.Timeout())
		defer cancel()

		resp, err := lc.client.Get(fetchCtx, lc.path)
		if err != nil {
			return nil, err
		}
		var l Links
		if err := resp.Decode(&l); err != nil {
			return nil, fmt.Errorf("decode links: %w", err)
		}
		lc.mu.Lock()
		lc.links = &l
		lc.mu.Unlock()
		logging.Infof("ajax: links loaded from %s: %s", lc.path, strings.Join(l.Resources(), ", "))
		return &l, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logging.Debug("ajax: links request shared with a concurrent caller")
		}
		return res.Val.(*Links), nil
	}
}

// Client returns the underlying client bound to the loaded links.
func (lc *LinksCache) Client(ctx context.Context) (*Client, error) {
	l, err := lc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lc.client.WithLinks(l), nil
}
