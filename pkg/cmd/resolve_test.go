package cmd

import (
	"testing"

	"github.com/pseudomuto/sqlfold/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestResolveCommand_AllClauses(t *testing.T) {
	out, err := runCommand(t, config.Default(), resolveCmd())
	require.NoError(t, err)

	for _, want := range []string{
		"SELECT", "FROM", "WHERE", "GROUP_BY", "HAVING", "WINDOW",
		"MATCH_RECOGNIZE", "ORDER_BY", "OVER", "VALUES", "UPDATE_SET",
		"WIDE", "TALL", "override", "legacy", "default",
	} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "global")
}

func TestResolveCommand_SelectedClauses(t *testing.T) {
	cfg := settings(t, "folding.default=fold,folding.having=chop")

	out, err := runCommand(t, cfg, resolveCmd(), "having", "group by")
	require.NoError(t, err)
	require.Contains(t, out, "HAVING")
	require.Contains(t, out, "CHOP")
	require.Contains(t, out, "GROUP_BY")
	require.Contains(t, out, "FOLD")
	require.Contains(t, out, "global")
	require.NotContains(t, out, "SELECT")
}

func TestResolveCommand_UnknownClause(t *testing.T) {
	_, err := runCommand(t, config.Default(), resolveCmd(), "limit")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown clause: limit")
}
