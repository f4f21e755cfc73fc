//go:build unit

package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/LerianStudio/lib-tripwire/tripwire/assert"
	"github.com/LerianStudio/lib-tripwire/tripwire/log"
	"github.com/LerianStudio/lib-tripwire/tripwire/runtime"
	"github.com/fatih/color"
	testifyassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestWriteInfo(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeInfo(&buf))

	out := buf.String()
	testifyassert.Equal(t, 1, strings.Count(out, "[COMPILER] "))
	testifyassert.Equal(t, 1, strings.Count(out, "[OS] "))
	testifyassert.Contains(t, out, "Leading zeroes in 8 are equal to 28")
}

func TestRootCmd_Info(t *testing.T) {
	var buf bytes.Buffer

	root := newRootCmd(Config{})
	root.SetOut(&buf)
	root.SetArgs([]string{"info", "--no-color"})

	require.NoError(t, root.Execute())
	testifyassert.Contains(t, buf.String(), "Leading zeroes in 8 are equal to 28")
}

func TestRootCmd_InfoRejectsArgs(t *testing.T) {
	root := newRootCmd(Config{})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"info", "extra"})

	require.Error(t, root.Execute())
}

func TestRunSelfTest_AllPass(t *testing.T) {
	var out, errOut bytes.Buffer

	err := runSelfTest(context.Background(), &out, &errOut, log.NewNop(), runtime.KeepRunning, selfTests())
	require.NoError(t, err)

	text := out.String()
	testifyassert.Contains(t, text, "RUNNING TESTS")
	testifyassert.Equal(t, len(selfTests()), strings.Count(text, "[TEST PASSED]"))
	testifyassert.Contains(t, text, "Tests OK")
	testifyassert.Empty(t, errOut.String())
	testifyassert.Nil(t, assert.CurrentHandler())
}

func TestRunSelfTest_ReportsFailures(t *testing.T) {
	var out, errOut bytes.Buffer

	tests := []selfTest{
		{name: "passing", run: func() { assert.That(true, "true") }},
		{name: "failing", run: func() {
			assert.That(1 > 2, "1 > 2", "math is broken")
			assert.CheckAt(false, "x > 0", "file.ext", 42, "bad value")
		}},
	}

	err := runSelfTest(context.Background(), &out, &errOut, log.NewNop(), runtime.KeepRunning, tests)
	require.ErrorIs(t, err, errSelfTestFailed)

	text := out.String()
	testifyassert.Contains(t, text, "[TEST PASSED] passing")
	testifyassert.Contains(t, text, "[TEST FAILED] failing")
	testifyassert.Contains(t, text, "assertion_failed_total=2")

	testifyassert.Contains(t, errOut.String(), "[ASSERTION] [EXPR]: 1 > 2")
	testifyassert.Contains(t, errOut.String(), "[FILE]: file.ext [LINE]: 42 [MSG]: bad value")
}

func TestRunSelfTest_RestoresPreviousHandler(t *testing.T) {
	recorder := assert.NewRecorder()
	assert.SetHandler(recorder.Handler())
	t.Cleanup(func() { assert.SetHandler(nil) })

	var out bytes.Buffer

	err := runSelfTest(context.Background(), &out, &bytes.Buffer{}, log.NewNop(), runtime.KeepRunning, nil)
	require.NoError(t, err)

	assert.CheckAt(false, "after", "f.go", 1)
	testifyassert.Equal(t, 1, recorder.Len())
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "LOG_LEVEL", "OTEL_LIBRARY_NAME", "TRIPWIRE_FAULT_POLICY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := loadConfig()
	require.NoError(t, err)

	testifyassert.Equal(t, "local", cfg.Environment)
	testifyassert.Equal(t, "tripwire", cfg.LoggerName)

	policy, err := cfg.policy()
	require.NoError(t, err)
	testifyassert.Equal(t, runtime.KeepRunning, policy)
	testifyassert.False(t, cfg.isProduction())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TRIPWIRE_FAULT_POLICY", "crash-process")

	cfg, err := loadConfig()
	require.NoError(t, err)

	testifyassert.True(t, cfg.isProduction())
	testifyassert.Equal(t, "warn", cfg.loggerConfig().Level)

	policy, err := cfg.policy()
	require.NoError(t, err)
	testifyassert.Equal(t, runtime.CrashProcess, policy)
}

func TestSelfTestCmd_RejectsBadPolicy(t *testing.T) {
	root := newRootCmd(Config{Environment: "local", FaultPolicy: "explode"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"selftest"})

	require.Error(t, root.Execute())
}

func TestSelfTestCmd_Runs(t *testing.T) {
	t.Cleanup(func() { runtime.SetProductionMode(false) })

	var out bytes.Buffer

	root := newRootCmd(Config{Environment: "local", LoggerName: "tripwire", FaultPolicy: "keep-running"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"selftest"})

	require.NoError(t, root.Execute())
	testifyassert.Contains(t, out.String(), "Tests OK")
}
