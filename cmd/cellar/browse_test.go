package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/internal/shell"
	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/core"
)

// scripted replays inputs, then returns end.
type scripted struct {
	inputs  []string
	end     error
	history []string
}

func (s *scripted) Prompt(string) (string, error) {
	if len(s.inputs) == 0 {
		return "", s.end
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in, nil
}

func (s *scripted) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func newSession(t *testing.T) *shell.Session {
	t.Helper()
	ctx := context.Background()
	svc, err := core.NewService(ctx, memory.NewStore(nil), core.FeedSourceFunc(func(context.Context) ([]core.Row, error) {
		return []core.Row{{core.ColumnName: "Alpha", core.ColumnType: "Red"}}, nil
	}), nil)
	require.NoError(t, err)
	_, err = svc.Load(ctx)
	require.NoError(t, err)
	return shell.New(ctx, svc, shell.Config{})
}

func TestReadLoop(t *testing.T) {
	t.Run("Quit Ends Cleanly", func(t *testing.T) {
		p := &scripted{inputs: []string{"type Red", "quit", "ls"}}
		require.NoError(t, readLoop(p, newSession(t), io.Discard))
		assert.Equal(t, []string{"type Red", "quit"}, p.history)
	})

	t.Run("EOF And Abort End Cleanly", func(t *testing.T) {
		assert.NoError(t, readLoop(&scripted{end: io.EOF}, newSession(t), io.Discard))
		assert.NoError(t, readLoop(&scripted{end: liner.ErrPromptAborted}, newSession(t), io.Discard))
	})

	t.Run("Command Errors Are Reported", func(t *testing.T) {
		var errOut bytes.Buffer
		p := &scripted{inputs: []string{"frobnicate"}, end: io.EOF}
		require.NoError(t, readLoop(p, newSession(t), &errOut))
		assert.Contains(t, errOut.String(), "unknown command")
	})

	t.Run("Read Errors Are Returned", func(t *testing.T) {
		broken := errors.New("tty gone")
		err := readLoop(&scripted{end: broken}, newSession(t), io.Discard)
		assert.ErrorIs(t, err, broken)
	})
}
