package resolver

import (
	"errors"
	"fmt"

	"profile-sync/core/inventory"
)

const (
	// DefaultKeepaliveInterval disables the idle keepalive.
	DefaultKeepaliveInterval = 0
	// DefaultTerminalType is reported to the remote side when nothing else is configured.
	DefaultTerminalType = "xterm-256color"
)

// ErrMissingField is matched by MissingFieldError.
var ErrMissingField = errors.New("missing mandatory field")

// MissingFieldError reports a host without a mandatory field.
type MissingFieldError struct {
	Document string
	Host     string
	Field    string
}

func (e *MissingFieldError) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("host %q: %s %q", e.Host, ErrMissingField, e.Field)
	}
	return fmt.Sprintf("%s: host %q: %s %q", e.Document, e.Host, ErrMissingField, e.Field)
}

// Is makes errors.Is(err, ErrMissingField) match.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Resolved is the fully merged configuration of one host. Pointer fields are nil
// when no stage set them; the other fields always carry a value.
type Resolved struct {
	Hostname            string   `json:"hostname"`
	IP                  string   `json:"ip"`
	Tags                []string `json:"tags"`
	User                *string  `json:"user,omitempty"`
	Port                *string  `json:"port,omitempty"`
	Transport           *string  `json:"transport,omitempty"`
	OpenPasswordManager *bool    `json:"open_password_manager,omitempty"`
	ExtraArgs           *string  `json:"extra_args,omitempty"`
	KeepaliveInterval   int      `json:"keepalive_interval"`
	TerminalType        string   `json:"terminal_type"`
	// UnknownGroups lists referenced groups the document does not define.
	UnknownGroups []string `json:"unknown_groups,omitempty"`
}

// Builtin returns the built-in stage: the lowest-priority patch.
func Builtin() inventory.OptionSet {
	return inventory.OptionSet{
		KeepaliveInterval: inventory.Set(DefaultKeepaliveInterval),
		TerminalType:      inventory.Set(DefaultTerminalType),
	}
}

// Resolve merges the stages for host. defaults and groups may be nil.
func Resolve(host inventory.HostSpec, defaults *inventory.OptionSet, groups map[string]inventory.OptionSet) (Resolved, error) {
	if host.IP == "" {
		return Resolved{}, &MissingFieldError{Host: host.Name, Field: "ip"}
	}

	res := Resolved{
		Hostname: host.Name,
		IP:       host.IP,
		Tags:     []string{},
	}

	patches := make([]inventory.OptionSet, 0, len(host.Groups)+2)
	if defaults != nil {
		patches = append(patches, *defaults)
	}
	for _, name := range host.Groups {
		group, ok := groups[name]
		if !ok {
			res.UnknownGroups = append(res.UnknownGroups, name)
			continue
		}
		patches = append(patches, group)
		res.Tags = append(res.Tags, name)
	}
	patches = append(patches, host.Options)

	opts := Builtin()
	for _, patch := range patches {
		opts = opts.Merge(patch)
	}

	res.User = opts.User.Ptr()
	res.Port = opts.Port.Ptr()
	res.Transport = opts.Transport.Ptr()
	res.OpenPasswordManager = opts.OpenPasswordManager.Ptr()
	res.ExtraArgs = opts.ExtraArgs.Ptr()

	// An explicit null falls back to the built-in value.
	res.KeepaliveInterval = DefaultKeepaliveInterval
	if v, ok := opts.KeepaliveInterval.Get(); ok {
		res.KeepaliveInterval = v
	}
	res.TerminalType = DefaultTerminalType
	if v, ok := opts.TerminalType.Get(); ok {
		res.TerminalType = v
	}

	return res, nil
}

// ResolveDocument resolves every host of doc in order. The first host without
// an ip aborts the whole document.
func ResolveDocument(doc *inventory.Document) ([]Resolved, error) {
	out := make([]Resolved, 0, len(doc.Hosts))
	for _, host := range doc.Hosts {
		res, err := Resolve(host, doc.Defaults, doc.Groups)
		if err != nil {
			var missing *MissingFieldError
			if errors.As(err, &missing) {
				missing.Document = doc.Name
			}
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
