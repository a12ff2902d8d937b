package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandID(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"topic_root", Command{Topic: "plugins"}, "plugins"},
		{"subcommand", Command{Topic: "plugins", Command: "install"}, "plugins:install"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.ID())
		})
	}
}

func TestVisible(t *testing.T) {
	cmd := Command{
		Args: []Arg{
			{Name: "app"},
			{Name: "secret", Hidden: true},
			{Name: "region", Optional: true},
		},
		Flags: map[string]Flag{
			"force": {Char: "f"},
			"debug": {Hidden: true},
		},
	}

	args := cmd.VisibleArgs()
	assert.Len(t, args, 2)
	assert.Equal(t, "app", args[0].Name)
	assert.True(t, args[0].Required())
	assert.False(t, args[1].Required())

	flags := cmd.VisibleFlags()
	assert.Len(t, flags, 1)
	assert.Contains(t, flags, "force")
}
