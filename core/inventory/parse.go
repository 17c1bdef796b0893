package inventory

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type optionDecoder func(o *OptionSet, n *yaml.Node) error

// optionKeys maps document keys to option decoders. The snake_case spelling is
// canonical; camelCase aliases are accepted for JSON inventories.
var optionKeys = map[string]optionDecoder{
	"user":                stringOption(func(o *OptionSet) *Field[string] { return &o.User }),
	"port":                stringOption(func(o *OptionSet) *Field[string] { return &o.Port }),
	"transport":           stringOption(func(o *OptionSet) *Field[string] { return &o.Transport }),
	"open_pass_manager":   boolOption(func(o *OptionSet) *Field[bool] { return &o.OpenPasswordManager }),
	"openPasswordManager": boolOption(func(o *OptionSet) *Field[bool] { return &o.OpenPasswordManager }),
	"extra_args":          stringOption(func(o *OptionSet) *Field[string] { return &o.ExtraArgs }),
	"extraArgs":           stringOption(func(o *OptionSet) *Field[string] { return &o.ExtraArgs }),
	"keepalive_interval":  intOption(func(o *OptionSet) *Field[int] { return &o.KeepaliveInterval }),
	"keepaliveInterval":   intOption(func(o *OptionSet) *Field[int] { return &o.KeepaliveInterval }),
	"terminal_type":       stringOption(func(o *OptionSet) *Field[string] { return &o.TerminalType }),
	"terminalType":        stringOption(func(o *OptionSet) *Field[string] { return &o.TerminalType }),
}

// Parse decodes an inventory document. An empty document yields a Document
// without hosts; it is up to the caller to decide whether that is an error.
func Parse(name string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", name, err)
	}

	doc := &Document{Name: name}
	if len(root.Content) == 0 {
		return doc, nil
	}

	top := resolveAlias(root.Content[0])
	if isNull(top) {
		return doc, nil
	}

	pairs, err := mappingPairs(top)
	if err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", name, err)
	}

	for _, p := range pairs {
		switch p.key {
		case "hosts":
			doc.Hosts, err = parseHosts(p.value)
		case "defaults":
			if !isNull(p.value) {
				var opts OptionSet
				opts, err = parseOptions(p.value)
				doc.Defaults = &opts
			}
		case "groups":
			doc.Groups, err = parseGroups(p.value)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing inventory %s: %s: %w", name, p.key, err)
		}
	}

	return doc, nil
}

func parseHosts(n *yaml.Node) ([]HostSpec, error) {
	if isNull(n) {
		return nil, nil
	}
	pairs, err := mappingPairs(n)
	if err != nil {
		return nil, err
	}

	hosts := make([]HostSpec, 0, len(pairs))
	for _, p := range pairs {
		host, err := parseHost(p.key, p.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.key, err)
		}
		hosts = append(hosts, host)
	}
	return hosts, nil
}

func parseHost(name string, n *yaml.Node) (HostSpec, error) {
	host := HostSpec{Name: name}
	if isNull(n) {
		return host, nil
	}

	pairs, err := mappingPairs(n)
	if err != nil {
		return host, err
	}

	for _, p := range pairs {
		switch p.key {
		case "ip":
			if isNull(p.value) {
				host.IP = ""
				continue
			}
			if p.value.Kind != yaml.ScalarNode {
				return host, fmt.Errorf("ip: line %d: expected a scalar", p.value.Line)
			}
			host.IP = p.value.Value
		case "groups":
			host.Groups, err = parseGroupList(p.value)
			if err != nil {
				return host, fmt.Errorf("groups: %w", err)
			}
		default:
			if err := decodeOption(&host.Options, p); err != nil {
				return host, err
			}
		}
	}
	return host, nil
}

func parseGroupList(n *yaml.Node) ([]string, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		return []string{n.Value}, nil
	case n.Kind != yaml.SequenceNode:
		return nil, fmt.Errorf("line %d: expected a list of group names", n.Line)
	}

	groups := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, fmt.Errorf("line %d: expected a group name", item.Line)
		}
		groups = append(groups, item.Value)
	}
	return groups, nil
}

func parseGroups(n *yaml.Node) (map[string]OptionSet, error) {
	if isNull(n) {
		return nil, nil
	}
	pairs, err := mappingPairs(n)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]OptionSet, len(pairs))
	for _, p := range pairs {
		if isNull(p.value) {
			groups[p.key] = OptionSet{}
			continue
		}
		opts, err := parseOptions(p.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.key, err)
		}
		groups[p.key] = opts
	}
	return groups, nil
}

func parseOptions(n *yaml.Node) (OptionSet, error) {
	var opts OptionSet
	pairs, err := mappingPairs(n)
	if err != nil {
		return opts, err
	}
	for _, p := range pairs {
		if err := decodeOption(&opts, p); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// decodeOption applies a single key to opts. Unknown keys are ignored.
func decodeOption(opts *OptionSet, p pair) error {
	decode, ok := optionKeys[p.key]
	if !ok {
		return nil
	}
	if err := decode(opts, p.value); err != nil {
		return fmt.Errorf("%s: %w", p.key, err)
	}
	return nil
}

func stringOption(field func(*OptionSet) *Field[string]) optionDecoder {
	return func(o *OptionSet, n *yaml.Node) error {
		f := field(o)
		if isNull(n) {
			*f = Null[string]()
			return nil
		}
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: expected a scalar", n.Line)
		}
		*f = Set(n.Value)
		return nil
	}
}

func boolOption(field func(*OptionSet) *Field[bool]) optionDecoder {
	return func(o *OptionSet, n *yaml.Node) error {
		f := field(o)
		if isNull(n) {
			*f = Null[bool]()
			return nil
		}
		var v bool
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("line %d: expected a boolean: %w", n.Line, err)
		}
		*f = Set(v)
		return nil
	}
}

func intOption(field func(*OptionSet) *Field[int]) optionDecoder {
	return func(o *OptionSet, n *yaml.Node) error {
		f := field(o)
		if isNull(n) {
			*f = Null[int]()
			return nil
		}
		var v int
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("line %d: expected an integer: %w", n.Line, err)
		}
		*f = Set(v)
		return nil
	}
}

type pair struct {
	key   string
	value *yaml.Node
}

// mappingPairs flattens a mapping node into ordered key/value pairs. Merge keys
// ("<<") are expanded first so explicit keys override them, and a repeated key
// keeps its first position but takes the last value.
func mappingPairs(n *yaml.Node) ([]pair, error) {
	n = resolveAlias(n)
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}

	var merged, explicit []pair
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], resolveAlias(n.Content[i+1])
		if k.Value != "<<" {
			explicit = append(explicit, pair{key: k.Value, value: v})
			continue
		}

		sources := []*yaml.Node{v}
		if v.Kind == yaml.SequenceNode {
			// Earlier entries of a merge sequence take precedence.
			sources = make([]*yaml.Node, 0, len(v.Content))
			for j := len(v.Content) - 1; j >= 0; j-- {
				sources = append(sources, v.Content[j])
			}
		}
		for _, src := range sources {
			inner, err := mappingPairs(src)
			if err != nil {
				return nil, fmt.Errorf("merge key: %w", err)
			}
			merged = append(merged, inner...)
		}
	}

	out := make([]pair, 0, len(merged)+len(explicit))
	index := make(map[string]int, len(merged)+len(explicit))
	for _, p := range append(merged, explicit...) {
		if i, ok := index[p.key]; ok {
			out[i].value = p.value
			continue
		}
		index[p.key] = len(out)
		out = append(out, p)
	}
	return out, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
