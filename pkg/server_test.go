package pkg

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/qnkhuat/blockterm/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	s := &Server{Args: []string{"-width", "12"}}

	assert.Equal(t, []string{"-width", "12", "-nick", "eve"}, s.CommandArgs("eve"))
	assert.Equal(t, []string{"-width", "12", "-nick", "evilname"}, s.CommandArgs("evil name"))
	assert.Equal(t, []string{"-width", "12"}, s.Args, "CommandArgs changed Args")

	args := s.CommandArgs("")
	require.Len(t, args, 4)
	assert.NotEmpty(t, args[3])
}

func TestNewSSHServer(t *testing.T) {
	_, err := (&Server{}).newSSHServer()
	assert.ErrorIs(t, err, ErrNoListenAddress)

	s := &Server{
		ListenAddress: "127.0.0.1:0",
		HostKeyFile:   filepath.Join(t.TempDir(), "missing_key"),
	}
	server, err := s.newSSHServer()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", server.Addr)
	assert.Equal(t, ServerIdleTimeout, server.IdleTimeout)
	assert.Equal(t, DefaultBinary, s.Binary)
}

func TestShutdownBeforeListen(t *testing.T) {
	s := &Server{ListenAddress: config.DefaultSSHAddr}
	assert.NoError(t, s.Shutdown(context.Background()))
}
