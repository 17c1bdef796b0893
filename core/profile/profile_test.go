package profile_test

import (
	"encoding/json"
	"testing"

	"profile-sync/core/profile"
	"profile-sync/core/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		res  resolver.Resolved
		want string
	}{
		{
			name: "AllFields",
			res:  resolver.Resolved{IP: "10.0.0.1", User: strPtr("bob"), Port: strPtr("22"), ExtraArgs: strPtr("-v")},
			want: "ssh bob@10.0.0.1 -p 22 -v",
		},
		{
			name: "SSH2Alias",
			res:  resolver.Resolved{IP: "host1", Transport: strPtr("ssh2")},
			want: "ssh host1",
		},
		{
			name: "UnknownTransportPassesThrough",
			res:  resolver.Resolved{IP: "host1", Transport: strPtr("mosh"), User: strPtr("me")},
			want: "mosh me@host1",
		},
		{
			name: "EmptyTransport",
			res:  resolver.Resolved{IP: "host1", Transport: strPtr("")},
			want: "ssh host1",
		},
		{
			name: "EmptyValuesSkipped",
			res:  resolver.Resolved{IP: "host1", User: strPtr(""), Port: strPtr(""), ExtraArgs: strPtr("")},
			want: "ssh host1",
		},
		{
			name: "NoEscaping",
			res:  resolver.Resolved{IP: "host1", ExtraArgs: strPtr(`-o "ProxyJump bastion"; echo hi`)},
			want: `ssh host1 -o "ProxyJump bastion"; echo hi`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profile.RenderCommand(tt.res))
		})
	}
}

func TestBuild(t *testing.T) {
	res := resolver.Resolved{
		Hostname:            "web1",
		IP:                  "10.0.0.1",
		Tags:                []string{"lab"},
		User:                strPtr("bob"),
		OpenPasswordManager: boolPtr(false),
		KeepaliveInterval:   30,
		TerminalType:        "xterm-256color",
	}

	c := profile.Build(res)

	assert.Equal(t, "web1", c.Name)
	assert.Empty(t, c.Guid)
	assert.Equal(t, "ssh bob@10.0.0.1", c.Command)
	assert.Equal(t, "Yes", c.CustomCommand)
	assert.Equal(t, []string{"lab"}, c.Tags)
	assert.Equal(t, boolPtr(false), c.OpenPasswordManager)
	require.NotNil(t, c.IdlePeriod)
	assert.Equal(t, 30, *c.IdlePeriod)
	assert.Equal(t, 0, *c.IdleCode)
	assert.True(t, *c.SendCodeWhenIdle)
	assert.Equal(t, "xterm-256color", c.TerminalType)
}

func TestBuild_DoesNotAliasTags(t *testing.T) {
	tags := []string{"lab"}
	c := profile.Build(resolver.Resolved{Hostname: "h", IP: "1.1.1.1", Tags: tags})
	tags[0] = "changed"
	assert.Equal(t, []string{"lab"}, c.Tags)
}

func TestRecordJSON(t *testing.T) {
	t.Run("OptionalKeysOmitted", func(t *testing.T) {
		c := profile.Build(resolver.Resolved{Hostname: "h", IP: "1.1.1.1", Tags: []string{}})
		data, err := json.Marshal(c.WithID("G-1"))
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, "h", raw["Name"])
		assert.Equal(t, "G-1", raw["Guid"])
		assert.Equal(t, "Yes", raw["Custom Command"])
		assert.Equal(t, "ssh 1.1.1.1", raw["Command"])
		assert.Equal(t, float64(34), raw["Title Components"])
		assert.Equal(t, `\(profile.name)`, raw["Badge Text"])
		for _, key := range []string{"Tags", "Open Password Manager Automatically", "Send Code When Idle", "Idle Code", "Idle Period", "Terminal Type"} {
			assert.NotContains(t, raw, key)
		}
	})

	t.Run("IdleBlockTogether", func(t *testing.T) {
		c := profile.Build(resolver.Resolved{Hostname: "h", IP: "1.1.1.1", KeepaliveInterval: 45, TerminalType: "vt100"})
		data, err := json.Marshal(c.Record)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, true, raw["Send Code When Idle"])
		assert.Equal(t, float64(0), raw["Idle Code"])
		assert.Equal(t, float64(45), raw["Idle Period"])
		assert.Equal(t, "vt100", raw["Terminal Type"])
	})

	t.Run("PasswordManagerFalseKept", func(t *testing.T) {
		c := profile.Build(resolver.Resolved{Hostname: "h", IP: "1.1.1.1", OpenPasswordManager: boolPtr(false)})
		data, err := json.Marshal(c.Record)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"Open Password Manager Automatically":false`)
	})
}

func TestBuildAll(t *testing.T) {
	out := profile.BuildAll([]resolver.Resolved{
		{Hostname: "a", IP: "1.1.1.1"},
		{Hostname: "b", IP: "2.2.2.2"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
}
