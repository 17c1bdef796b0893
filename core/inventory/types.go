package inventory

// Document is one parsed inventory source.
type Document struct {
	// Name identifies the source (file path or object URL).
	Name string
	// Hosts in document order.
	Hosts []HostSpec
	// Defaults apply to every host in this document. Nil when absent.
	Defaults *OptionSet
	// Groups are named option bundles referenced by hosts.
	Groups map[string]OptionSet
}

// HostSpec is the raw description of one host.
type HostSpec struct {
	// Name is the hostname key and becomes the profile name.
	Name string
	// IP is the address (or resolvable name) to connect to. Mandatory.
	IP string
	// Groups lists group names in application order; later groups win.
	Groups []string
	// Options holds the host-level overrides.
	Options OptionSet
}

// OptionSet is a set of connection options where every field is optional.
type OptionSet struct {
	User                Field[string]
	Port                Field[string]
	Transport           Field[string]
	OpenPasswordManager Field[bool]
	ExtraArgs           Field[string]
	KeepaliveInterval   Field[int]
	TerminalType        Field[string]
}

// Merge returns o with every field that is present in patch replaced by the
// patch value. Fields absent from patch keep their value from o.
func (o OptionSet) Merge(patch OptionSet) OptionSet {
	return OptionSet{
		User:                patch.User.Over(o.User),
		Port:                patch.Port.Over(o.Port),
		Transport:           patch.Transport.Over(o.Transport),
		OpenPasswordManager: patch.OpenPasswordManager.Over(o.OpenPasswordManager),
		ExtraArgs:           patch.ExtraArgs.Over(o.ExtraArgs),
		KeepaliveInterval:   patch.KeepaliveInterval.Over(o.KeepaliveInterval),
		TerminalType:        patch.TerminalType.Over(o.TerminalType),
	}
}

// HostCount returns the number of hosts in the document.
func (d *Document) HostCount() int {
	if d == nil {
		return 0
	}
	return len(d.Hosts)
}
