// Package ajax is the HTTP wrapper the UI uses to reach the dashboard
// backend. Responses are grafted with the backend's auxiliary links.
package ajax

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andareed/siftly-tablegraph/logging"
)

// ErrNoLinks is returned for resource requests made before links are configured.
var ErrNoLinks = errors.New("ajax: no links configured")

const maxBodyBytes = 8 << 20

const defaultTimeout = 10 * time.Second

// Request describes one call. Resource (optionally with ID) takes precedence
// over URL and is resolved through the links table.
type Request struct {
	URL      string
	Resource string
	ID       string
	Method   string
	Data     any
	Params   url.Values
	Headers  map[string]string
}

type RequestOptions struct {
	// ExcludeBasepath skips the basepath prefix, for external links.
	ExcludeBasepath bool
}

type AuthLinks struct {
	Links []AuthLink `json:"links"`
}

// Response is the HTTP response with the link groups grafted on.
type Response struct {
	StatusCode int
	Header     http.Header
	Data       json.RawMessage

	Auth          AuthLinks
	LogoutLink    string
	External      ExternalLinks
	Users         string
	AllUsers      string
	Organizations string
	MeLink        string
	Config        ConfigLinks
	Environment   string
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Data) == 0 {
		return errors.New("ajax: empty response body")
	}
	return json.Unmarshal(r.Data, v)
}

func (r *Response) withLinks(l *Links) *Response {
	if r == nil || l == nil {
		return r
	}
	out := *r
	out.Auth = AuthLinks{Links: l.Auth}
	out.LogoutLink = l.Logout
	out.External = l.External
	out.Users = l.Users
	out.AllUsers = l.AllUsers
	out.Organizations = l.Organizations
	out.MeLink = l.Me
	out.Config = l.Config
	out.Environment = l.Environment
	return &out
}

// ResponseError is a failed request. Response is nil when no HTTP response
// was received.
type ResponseError struct {
	Method   string
	URL      string
	Response *Response
	Err      error
}

func (e *ResponseError) Error() string {
	if e.Response != nil {
		body := strings.TrimSpace(string(e.Response.Data))
		if len(body) > 256 {
			body = body[:256]
		}
		return fmt.Sprintf("ajax: %s %s status=%d body=%s", e.Method, e.URL, e.Response.StatusCode, body)
	}
	return fmt.Sprintf("ajax: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status, or 0 when no response was received.
func (e *ResponseError) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// Client issues requests against a backend. The basepath is prefixed to
// internal URLs; links are bound explicitly and never shared globally.
type Client struct {
	host     string
	basepath string
	links    *Links
	http     *http.Client
}

// NewClient creates a client for host (scheme://host[:port], may be empty
// for relative URLs) and basepath. links may be nil until fetched.
func NewClient(host, basepath string, links *Links, opts ...Option) *Client {
	c := &Client{
		host:     strings.TrimRight(strings.TrimSpace(host), "/"),
		basepath: strings.TrimRight(basepath, "/"),
		links:    links,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithLinks returns a copy of c bound to links.
func (c *Client) WithLinks(links *Links) *Client {
	out := *c
	out.links = links
	return &out
}

func (c *Client) Links() *Links { return c.links }

func (c *Client) Basepath() string { return c.basepath }

// Timeout is the per-request limit of the underlying HTTP client.
func (c *Client) Timeout() time.Duration {
	if c.http == nil || c.http.Timeout <= 0 {
		return defaultTimeout
	}
	return c.http.Timeout
}

func (c *Client) addBasepath(u string, exclude bool) string {
	if exclude {
		return u
	}
	return c.basepath + u
}

// ResolveURL applies the basepath and resource lookup rules to req.
func (c *Client) ResolveURL(req Request, opts RequestOptions) (string, error) {
	u := c.addBasepath(req.URL, opts.ExcludeBasepath)
	if req.Resource == "" {
		return u, nil
	}

	if c.links == nil {
		return "", ErrNoLinks
	}
	path, ok := c.links.Resource(req.Resource)
	if !ok {
		return "", fmt.Errorf("ajax: unknown resource %q", req.Resource)
	}
	if req.ID != "" {
		return c.addBasepath(path+"/"+req.ID, opts.ExcludeBasepath), nil
	}
	return c.addBasepath(path, opts.ExcludeBasepath), nil
}

func (c *Client) absolute(u string) string {
	if c.host == "" || strings.Contains(u, "://") {
		return u
	}
	return c.host + u
}

// Do performs req. On success the response carries the link groups when links
// are configured. Any failure, including non-2xx statuses, is a *ResponseError.
func (c *Client) Do(ctx context.Context, req Request, opts RequestOptions) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	if c.links == nil {
		logging.Errorf("AJAX function has no links. Trying to reach url %s, resource %s, id %s, method %s",
			req.URL, req.Resource, req.ID, method)
	}

	u, err := c.ResolveURL(req, opts)
	if err != nil {
		return nil, &ResponseError{Method: method, URL: req.URL, Err: err}
	}

	resp, err := c.send(ctx, method, u, req)
	if err != nil {
		return nil, &ResponseError{Method: method, URL: u, Response: resp.withLinks(c.links), Err: err}
	}
	return resp.withLinks(c.links), nil
}

// Get is a plain GET with the basepath applied and no link grafting.
func (c *Client) Get(ctx context.Context, u string) (*Response, error) {
	full := c.addBasepath(u, false)
	resp, err := c.send(ctx, http.MethodGet, full, Request{})
	if err != nil {
		logging.Errorf("ajax: GET %s: %v", full, err)
		return nil, &ResponseError{Method: http.MethodGet, URL: full, Response: resp, Err: err}
	}
	return resp, nil
}

// send returns the response even on a non-2xx status so callers can report it.
func (c *Client) send(ctx context.Context, method, u string, req Request) (*Response, error) {
	target, err := url.Parse(c.absolute(u))
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if len(req.Params) > 0 {
		q := target.Query()
		for k, vs := range req.Params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		target.RawQuery = q.Encode()
	}

	var body io.Reader
	if req.Data != nil {
		blob, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(blob)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	logging.Debugf("ajax: %s %s", method, target.String())
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	blob, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header.Clone(),
		Data:       json.RawMessage(blob),
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, fmt.Errorf("status %d", httpResp.StatusCode)
	}
	return resp, nil
}
