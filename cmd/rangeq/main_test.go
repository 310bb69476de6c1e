package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-segments/internal/script"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type result struct {
	out  string
	logs *observer.ObservedLogs
	err  error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var res result
	cmd := newRootCmd(func(_ *cobra.Command, lvl zapcore.Level) zapcore.Core {
		core, logs := observer.New(lvl)
		res.logs = logs
		return core
	})
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	res.err = cmd.Execute()
	res.out = out.String()
	return res
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun_Stdin(t *testing.T) {
	res := execute(t, "fenwick 1 2 3 4\nsum 3\npsum 1 3\n", "run")
	require.NoError(t, res.err)
	require.Equal(t, "6\n5\n", res.out)
	require.Equal(t, 1, res.logs.FilterMessage("run finished").Len())
	require.Zero(t, res.logs.FilterMessage("exec").Len(), "debug is off by default")
}

func TestRun_File(t *testing.T) {
	p := writeFile(t, "uf.txt", "uf 10\nunite 1 2\nunite 2 5\ncount 5\n")
	res := execute(t, "", "run", p)
	require.NoError(t, res.err)
	require.Equal(t, "true\ntrue\n3\n", res.out)

	res = execute(t, "", "run", "--input", p)
	require.NoError(t, res.err)
	require.Equal(t, "true\ntrue\n3\n", res.out)

	res = execute(t, "", "run", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, res.err, os.ErrNotExist)
}

func TestRun_Env(t *testing.T) {
	t.Setenv("RANGEQ_MODULUS", "7")
	t.Setenv("RANGEQ_LOG_LEVEL", "debug")
	res := execute(t, "seg modsum 5 6\nrange 0 2\n", "run")
	require.NoError(t, res.err)
	require.Equal(t, "4\n", res.out)
	require.Equal(t, 2, res.logs.FilterMessage("exec").Len())
}

func TestRun_Config(t *testing.T) {
	p := writeFile(t, "rangeq.yaml", "modulus: 5\nlog-level: debug\n")
	res := execute(t, "seg modsum 3 4\nrange 0 2\n", "--config", p, "run")
	require.NoError(t, res.err)
	require.Equal(t, "2\n", res.out)
	loaded := res.logs.FilterMessage("config loaded").All()
	require.Len(t, loaded, 1)
	require.Equal(t, p, loaded[0].ContextMap()["file"])

	res = execute(t, "seg modsum 3 4\nrange 0 2\n", "--config", p, "--modulus", "3", "run")
	require.NoError(t, res.err)
	require.Equal(t, "1\n", res.out, "flags override the config file")

	res = execute(t, "", "--config", filepath.Join(t.TempDir(), "none.yaml"), "run")
	require.ErrorContains(t, res.err, "read config")
}

func TestRun_Error(t *testing.T) {
	res := execute(t, "seg sum 1 2\nrange 0 2\nupdate 9 1\nrange 0 2\n", "run")
	var e *script.ExecError
	require.ErrorAs(t, res.err, &e)
	require.Equal(t, 3, e.Line)
	require.Equal(t, "3\n", res.out)
	failed := res.logs.FilterMessage("run failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zapcore.ErrorLevel, failed[0].Level)
}

func TestRun_BadLevel(t *testing.T) {
	res := execute(t, "", "--log-level", "loud", "run")
	require.ErrorContains(t, res.err, "log-level")
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "version")
	require.NoError(t, res.err)
	require.Equal(t, "rangeq "+Version+"\n", res.out)
}
