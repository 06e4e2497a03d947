package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/sghaida/docpatterns/factory"
	"github.com/sghaida/docpatterns/guide"
	"github.com/sghaida/docpatterns/mixin"
)

// run executes the CLI with a clean environment and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cleanEnv(t)
	return execute(t, args...)
}

func cleanEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PATTERNS_CONFIG", "")
	t.Setenv("PATTERNS_DEBUG", "")
	t.Setenv("PATTERNS_NO_COLOR", "true")
	t.Setenv("NO_COLOR", "")
}

// execute runs the CLI with the environment as the test left it.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := Run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

//
// -----------------------------------------------------------------------------
// factory
// -----------------------------------------------------------------------------

func TestFactory_AllKinds(t *testing.T) {
	out, errOut, err := run(t, "factory")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	golden.Assert(t, out, "factory.golden")
}

func TestFactory_SingleKind(t *testing.T) {
	out, _, err := run(t, "factory", "--kind", "REPORT")
	require.NoError(t, err)
	golden.Assert(t, out, "factory_report.golden")
}

func TestFactory_KindFromConfig(t *testing.T) {
	out, _, err := run(t, "--config", filepath.Join("testdata", "demo.yaml"), "factory")
	require.NoError(t, err)
	golden.Assert(t, out, "factory_report.golden")
}

func TestFactory_UnknownKind(t *testing.T) {
	out, errOut, err := run(t, "factory", "--kind", "memo")
	require.Error(t, err)
	assert.Empty(t, out)

	var uk factory.UnknownKindError
	require.True(t, errors.As(err, &uk))
	assert.Contains(t, errOut, `unknown document kind "memo"`)
	assert.Contains(t, errOut, "Available kinds: report, resume")
}

//
// -----------------------------------------------------------------------------
// mixin
// -----------------------------------------------------------------------------

func TestMixin_Defaults(t *testing.T) {
	out, errOut, err := run(t, "mixin")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	golden.Assert(t, out, "mixin.golden")
}

func TestMixin_FromConfig(t *testing.T) {
	out, _, err := run(t, "mixin", "--config", filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	golden.Assert(t, out, "mixin_config.golden")
}

func TestMixin_SkipAdd(t *testing.T) {
	out, errOut, err := run(t, "mixin", "--skip-add")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mixin.ErrMissingAttribute))

	assert.Equal(t, "Quarterly Report\nContent:\nFinancial summary for Q1 2024...\n", out)
	assert.Contains(t, errOut, "warning: mixin attributes left unset")
	assert.Contains(t, errOut, `Report has no attribute "source"`)
}

func TestMixin_ConfigFlagWinsOverEnv(t *testing.T) {
	cleanEnv(t)
	t.Setenv("PATTERNS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	out, errOut, err := execute(t, "mixin", "--config", filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	assert.Empty(t, errOut)
	golden.Assert(t, out, "mixin_config.golden")
}

func TestMixin_BadEnvConfigFails(t *testing.T) {
	cleanEnv(t)
	t.Setenv("PATTERNS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	out, errOut, err := execute(t, "mixin")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Check PATTERNS_CONFIG.")
}

func TestMixin_MissingConfigFile(t *testing.T) {
	_, errOut, err := run(t, "mixin", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, errOut, "Check the --config file.")
}

//
// -----------------------------------------------------------------------------
// compare / explain
// -----------------------------------------------------------------------------

func TestCompare(t *testing.T) {
	out, _, err := run(t, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "Factory vs Mixin\n")

	table := strings.TrimPrefix(out, "Factory vs Mixin\n")
	assert.Contains(t, table, "creational")
	assert.Contains(t, table, "compositional")
	assert.Contains(t, table, "Use mixins when several types need the same small capability.")
}

func TestExplain(t *testing.T) {
	out, _, err := run(t, "explain", "mixin")
	require.NoError(t, err)
	assert.Contains(t, out, "Mixin (compositional)")
	assert.Contains(t, out, "Advantages:")
}

func TestExplain_Unknown(t *testing.T) {
	_, errOut, err := run(t, "explain", "singleton")
	require.Error(t, err)

	var nf guide.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, errOut, "Known patterns: Factory, Mixin")
}

//
// -----------------------------------------------------------------------------
// root
// -----------------------------------------------------------------------------

func TestRoot_CobraErrorsArePrinted(t *testing.T) {
	_, errOut, err := run(t, "explain")
	require.Error(t, err)
	assert.Contains(t, errOut, "accepts 1 arg(s), received 0")
	assert.Contains(t, errOut, "patterns --help")
}

func TestRoot_UnknownFlag(t *testing.T) {
	_, errOut, err := run(t, "factory", "--nope")
	require.Error(t, err)
	assert.Contains(t, errOut, "unknown flag: --nope")
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "--debug", "factory", "--kind", "resume")
	require.NoError(t, err)
	assert.Equal(t, "Resume Header\nResume Body\n", out)
	assert.Contains(t, errOut, "factory.generated")
	assert.Contains(t, errOut, "run_id=")
}

func TestRoot_NoArgsPrintsHelp(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands:")
}
