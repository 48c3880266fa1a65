package cli

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcal/internal/client/auth"
)

func newTestRoot(factory Factory) *cobra.Command {
	root := &cobra.Command{Use: "gophcal", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(Commands(factory)...)
	return root
}

func TestCommands_Names(t *testing.T) {
	var names []string
	for _, cmd := range Commands(nil) {
		names = append(names, cmd.Name())
	}

	assert.Equal(t, []string{
		"signup", "login", "login-apple", "login-kakao", "logout", "status", "whoami",
		"month", "day", "add", "delete", "upcoming", "watch",
	}, names)
}

func TestCommands_Execute(t *testing.T) {
	store := marchStore()
	io, out := newTestIO()
	session := &SessionMock{
		SignInFunc: func(ctx context.Context, kind auth.Kind, creds auth.Credentials) auth.Result {
			return auth.Result{Success: true, Identity: &auth.Identity{Kind: kind, ProviderID: "1", Nickname: "민수"}}
		},
	}
	c := newTestCli(io, session, newTestCalendar(t, store.mock()))

	calls := 0
	factory := func(ctx context.Context) (*Cli, error) {
		calls++
		return c, nil
	}

	t.Run("month with output flag", func(t *testing.T) {
		root := newTestRoot(factory)
		root.SetArgs([]string{"month", "2025-03", "-o", "json"})
		require.NoError(t, root.Execute())

		var got []eventView
		require.NoError(t, json.Unmarshal([]byte(out.String()), &got))
		assert.Len(t, got, 4)
	})

	t.Run("login-kakao", func(t *testing.T) {
		root := newTestRoot(factory)
		root.SetArgs([]string{"login-kakao"})
		require.NoError(t, root.Execute())

		signIns := session.SignInCalls()
		require.NotEmpty(t, signIns)
		assert.Equal(t, auth.KindKakao, signIns[len(signIns)-1].Kind)
	})

	t.Run("add flags", func(t *testing.T) {
		root := newTestRoot(factory)
		root.SetArgs([]string{"add", "--title", "Lunch", "--date", "2025-03-12", "--time", "12:30"})
		require.NoError(t, root.Execute())

		assert.Contains(t, out.String(), "✓ Event created: 2025-03-12 12:30 Lunch")
	})

	t.Run("delete needs an id", func(t *testing.T) {
		root := newTestRoot(factory)
		root.SetArgs([]string{"delete"})
		assert.Error(t, root.Execute())
	})

	assert.Equal(t, 3, calls)
}

func TestCommands_FactoryError(t *testing.T) {
	errBoom := errors.New("database locked")
	root := newTestRoot(func(ctx context.Context) (*Cli, error) {
		return nil, errBoom
	})
	root.SetArgs([]string{"status"})

	assert.ErrorIs(t, root.Execute(), errBoom)
}
