package inventory_test

import (
	"testing"

	"profile-sync/core/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `
defaults:
  user: admin
  keepalive_interval: 30
groups:
  lab:
    port: 2222
    transport: ssh2
  quiet:
    open_pass_manager: false
    extra_args: ""
hosts:
  web1:
    ip: 10.0.0.1
    groups: [lab, quiet]
    port: 22
  db1:
    ip: db1.internal
    user: null
  bare:
`

func TestParse(t *testing.T) {
	doc, err := inventory.Parse("devices.yaml", []byte(sampleInventory))
	require.NoError(t, err)

	assert.Equal(t, "devices.yaml", doc.Name)
	require.Len(t, doc.Hosts, 3)

	t.Run("HostOrderFollowsDocument", func(t *testing.T) {
		names := []string{doc.Hosts[0].Name, doc.Hosts[1].Name, doc.Hosts[2].Name}
		assert.Equal(t, []string{"web1", "db1", "bare"}, names)
	})

	t.Run("Defaults", func(t *testing.T) {
		require.NotNil(t, doc.Defaults)
		user, ok := doc.Defaults.User.Get()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		keepalive, ok := doc.Defaults.KeepaliveInterval.Get()
		assert.True(t, ok)
		assert.Equal(t, 30, keepalive)
		assert.False(t, doc.Defaults.Port.Present)
	})

	t.Run("GroupsKeepFalsyValues", func(t *testing.T) {
		quiet := doc.Groups["quiet"]
		assert.Equal(t, inventory.Set(false), quiet.OpenPasswordManager)
		assert.Equal(t, inventory.Set(""), quiet.ExtraArgs)
	})

	t.Run("HostFields", func(t *testing.T) {
		web := doc.Hosts[0]
		assert.Equal(t, "10.0.0.1", web.IP)
		assert.Equal(t, []string{"lab", "quiet"}, web.Groups)
		assert.Equal(t, inventory.Set("22"), web.Options.Port)
	})

	t.Run("ExplicitNullIsPresent", func(t *testing.T) {
		db := doc.Hosts[1]
		assert.True(t, db.Options.User.Present)
		assert.Nil(t, db.Options.User.Value)
	})

	t.Run("EmptyHostBody", func(t *testing.T) {
		bare := doc.Hosts[2]
		assert.Equal(t, "bare", bare.Name)
		assert.Empty(t, bare.IP)
	})
}

func TestParse_JSON(t *testing.T) {
	data := `{"hosts": {"web1": {"ip": "10.0.0.1", "extraArgs": "-A", "openPasswordManager": true, "keepaliveInterval": 15, "terminalType": "vt100"}}}`

	doc, err := inventory.Parse("devices.json", []byte(data))
	require.NoError(t, err)
	require.Len(t, doc.Hosts, 1)

	opts := doc.Hosts[0].Options
	assert.Equal(t, inventory.Set("-A"), opts.ExtraArgs)
	assert.Equal(t, inventory.Set(true), opts.OpenPasswordManager)
	assert.Equal(t, inventory.Set(15), opts.KeepaliveInterval)
	assert.Equal(t, inventory.Set("vt100"), opts.TerminalType)
}

func TestParse_MergeKeys(t *testing.T) {
	data := `
base: &base
  user: deploy
  port: 2200
hosts:
  app1:
    <<: *base
    ip: 10.0.0.5
    port: 22
`
	doc, err := inventory.Parse("merge.yaml", []byte(data))
	require.NoError(t, err)
	require.Len(t, doc.Hosts, 1)

	opts := doc.Hosts[0].Options
	assert.Equal(t, inventory.Set("deploy"), opts.User)
	assert.Equal(t, inventory.Set("22"), opts.Port)
}

func TestParse_SingleGroupScalar(t *testing.T) {
	doc, err := inventory.Parse("one.yaml", []byte("hosts:\n  a:\n    ip: 1.1.1.1\n    groups: lab\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"lab"}, doc.Hosts[0].Groups)
}

func TestParse_EmptyDocuments(t *testing.T) {
	for _, data := range []string{"", "~", "defaults:\n  user: x\n", "hosts:\n"} {
		doc, err := inventory.Parse("empty.yaml", []byte(data))
		require.NoError(t, err, data)
		assert.Equal(t, 0, doc.HostCount(), data)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"NotAMapping", "- a\n- b\n", "expected a mapping"},
		{"HostsList", "hosts:\n  - web1\n", "hosts"},
		{"BadKeepalive", "hosts:\n  a:\n    ip: 1.1.1.1\n    keepalive_interval: soon\n", "keepalive_interval"},
		{"BadBool", "hosts:\n  a:\n    ip: 1.1.1.1\n    open_pass_manager: [1]\n", "open_pass_manager"},
		{"NestedUser", "hosts:\n  a:\n    ip: 1.1.1.1\n    user: {name: x}\n", "user"},
		{"BadGroups", "hosts:\n  a:\n    ip: 1.1.1.1\n    groups: {x: 1}\n", "groups"},
		{"InvalidYAML", "hosts: [\n", "parsing inventory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inventory.Parse("bad.yaml", []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestOptionSet_Merge(t *testing.T) {
	base := inventory.OptionSet{
		User:         inventory.Set("root"),
		Port:         inventory.Set("22"),
		TerminalType: inventory.Set("xterm-256color"),
	}
	patch := inventory.OptionSet{
		Port:         inventory.Set(""),
		TerminalType: inventory.Null[string](),
		ExtraArgs:    inventory.Set("-v"),
	}

	merged := base.Merge(patch)

	assert.Equal(t, inventory.Set("root"), merged.User)
	assert.Equal(t, inventory.Set(""), merged.Port)
	assert.Equal(t, inventory.Null[string](), merged.TerminalType)
	assert.Equal(t, inventory.Set("-v"), merged.ExtraArgs)
	assert.False(t, merged.Transport.Present)
}
