package ajax

import (
	"encoding/json"
	"fmt"
	"sort"
)

// AuthLink describes one configured login provider.
type AuthLink struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Login    string `json:"login"`
	Logout   string `json:"logout"`
	Callback string `json:"callback"`
}

type CustomLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ExternalLinks struct {
	StatusFeed string       `json:"statusFeed,omitempty"`
	Custom     []CustomLink `json:"custom,omitempty"`
}

type ConfigLinks struct {
	Self string `json:"self,omitempty"`
	Auth string `json:"auth,omitempty"`
}

type IFQLLinks struct {
	Self        string `json:"self,omitempty"`
	AST         string `json:"ast,omitempty"`
	Suggestions string `json:"suggestions,omitempty"`
}

// Links is the backend's table of resource names to URL paths plus the
// auxiliary link groups grafted onto every response.
type Links struct {
	Auth          []AuthLink
	Logout        string
	External      ExternalLinks
	Users         string
	AllUsers      string
	Organizations string
	Me            string
	Config        ConfigLinks
	Environment   string
	IFQL          IFQLLinks

	resources map[string]string
}

// NewLinks builds a links table from plain resource paths. Well-known keys
// (users, allUsers, organizations, me, environment, logout) also fill their fields.
func NewLinks(resources map[string]string) *Links {
	l := &Links{resources: make(map[string]string, len(resources))}
	for k, v := range resources {
		l.resources[k] = v
	}
	l.fillWellKnown()
	return l
}

func (l *Links) fillWellKnown() {
	l.Users = l.resources["users"]
	l.AllUsers = l.resources["allUsers"]
	l.Organizations = l.resources["organizations"]
	l.Me = l.resources["me"]
	l.Environment = l.resources["environment"]
	l.Logout = l.resources["logout"]
}

// Resource returns the path configured for name.
func (l *Links) Resource(name string) (string, bool) {
	if l == nil {
		return "", false
	}
	v, ok := l.resources[name]
	return v, ok
}

// Resources lists the names of every string resource, sorted.
func (l *Links) Resources() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.resources))
	for k := range l.resources {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (l *Links) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.resources = make(map[string]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			l.resources[k] = s
		}
	}
	l.fillWellKnown()

	decode := func(name string, dst any) error {
		v, ok := raw[name]
		if !ok || string(v) == "null" {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("links.%s: %w", name, err)
		}
		return nil
	}
	if err := decode("auth", &l.Auth); err != nil {
		return err
	}
	if err := decode("external", &l.External); err != nil {
		return err
	}
	if err := decode("config", &l.Config); err != nil {
		return err
	}
	return decode("ifql", &l.IFQL)
}
