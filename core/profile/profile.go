package profile

import (
	"strings"

	"profile-sync/core/resolver"
)

const (
	// CustomCommand tells the terminal to run Command instead of a login shell.
	CustomCommand = "Yes"
	// TitleComponents selects the session name as the window title.
	TitleComponents = 34
	// BadgeText shows the profile name as the session badge.
	BadgeText = `\(profile.name)`
	// IdleCode is the character sent when the session is idle (NUL).
	IdleCode = 0
	// DefaultTransport is used for unset and aliased transports.
	DefaultTransport = "ssh"
)

// transportAliases maps transports to the command that implements them.
var transportAliases = map[string]string{
	"":     DefaultTransport,
	"ssh2": DefaultTransport,
}

// Record is one profile as stored in the dynamic profiles document.
type Record struct {
	TitleComponents     int      `json:"Title Components"`
	BadgeText           string   `json:"Badge Text"`
	Name                string   `json:"Name"`
	Guid                string   `json:"Guid"`
	Tags                []string `json:"Tags,omitempty"`
	CustomCommand       string   `json:"Custom Command"`
	Command             string   `json:"Command"`
	OpenPasswordManager *bool    `json:"Open Password Manager Automatically,omitempty"`
	SendCodeWhenIdle    *bool    `json:"Send Code When Idle,omitempty"`
	IdleCode            *int     `json:"Idle Code,omitempty"`
	IdlePeriod          *int     `json:"Idle Period,omitempty"`
	TerminalType        string   `json:"Terminal Type,omitempty"`
}

// Candidate is a freshly built profile that has no identity yet.
type Candidate struct {
	Record
}

// WithID returns the candidate's record carrying id.
func (c Candidate) WithID(id string) Record {
	r := c.Record
	r.Guid = id
	return r
}

// Build renders the profile for one resolved host.
func Build(res resolver.Resolved) Candidate {
	rec := Record{
		TitleComponents: TitleComponents,
		BadgeText:       BadgeText,
		Name:            res.Hostname,
		CustomCommand:   CustomCommand,
		Command:         RenderCommand(res),
		TerminalType:    res.TerminalType,
	}

	if len(res.Tags) > 0 {
		rec.Tags = append([]string(nil), res.Tags...)
	}
	if res.OpenPasswordManager != nil {
		v := *res.OpenPasswordManager
		rec.OpenPasswordManager = &v
	}
	if res.KeepaliveInterval != 0 {
		send, code, period := true, IdleCode, res.KeepaliveInterval
		rec.SendCodeWhenIdle = &send
		rec.IdleCode = &code
		rec.IdlePeriod = &period
	}

	return Candidate{Record: rec}
}

// BuildAll builds candidates in order.
func BuildAll(resolved []resolver.Resolved) []Candidate {
	out := make([]Candidate, 0, len(resolved))
	for _, res := range resolved {
		out = append(out, Build(res))
	}
	return out
}

// TransportCommand returns the command keyword for a transport.
func TransportCommand(transport *string) string {
	t := ""
	if transport != nil {
		t = *transport
	}
	if cmd, ok := transportAliases[t]; ok {
		return cmd
	}
	return t
}

// RenderCommand builds the connection command line. Empty user, port and extra
// arguments are treated as unset.
func RenderCommand(res resolver.Resolved) string {
	var b strings.Builder
	b.WriteString(TransportCommand(res.Transport))
	b.WriteByte(' ')
	if res.User != nil && *res.User != "" {
		b.WriteString(*res.User)
		b.WriteByte('@')
	}
	b.WriteString(res.IP)
	if res.Port != nil && *res.Port != "" {
		b.WriteString(" -p ")
		b.WriteString(*res.Port)
	}
	if res.ExtraArgs != nil && *res.ExtraArgs != "" {
		b.WriteByte(' ')
		b.WriteString(*res.ExtraArgs)
	}
	return b.String()
}
