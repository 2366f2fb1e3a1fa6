package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/config"
	"github.com/nozzle/mt19937/internal/reference"
)

func runCLI(t *testing.T, cfg config.Config, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, cfg, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestPrintText(t *testing.T) {
	out, _, err := runCLI(t, config.Default(), "print", "-n", "7")
	require.NoError(t, err)

	want := "1791095845 4282876139 3093770124 4005303368     491263\n" +
		" 550290313 1298508491\n"
	assert.Equal(t, want, out)
}

func TestPrintDefaultsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Count = 2
	out, _, err := runCLI(t, cfg, "print", "--kind", "double")
	require.NoError(t, err)
	assert.Equal(t, "0.417022 0.997185\n", out)
}

func TestPrintCSV(t *testing.T) {
	out, _, err := runCLI(t, config.Default(), "print", "-n", "3", "-k", "u64", "-f", "csv")
	require.NoError(t, err)
	assert.Equal(t, "7692698082559361259\n13287641507927168072\n2109959069025161\n", out)
}

func TestPrintToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	out, log, err := runCLI(t, config.Default(), "-v", "print", "-n", "4", "-f", "csv", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, log, "saved 4 values")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1791095845", "4282876139", "3093770124", "4005303368"},
		strings.Fields(string(data)))
}

func TestPrintFloatRange(t *testing.T) {
	out, _, err := runCLI(t, config.Default(), "print", "-n", "40", "-k", "float", "-s", "99")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 40)
	for _, f := range fields {
		assert.True(t, f >= "0.000000" && f <= "1.000000", "value %s", f)
	}
}

func TestPrintRejectsBadKind(t *testing.T) {
	_, _, err := runCLI(t, config.Default(), "print", "-k", "u16")
	assert.Error(t, err)
}

func TestPrintRejectsNegativeCount(t *testing.T) {
	_, _, err := runCLI(t, config.Default(), "print", "--count=-1")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, _, err := runCLI(t, config.Default(), "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 0 incorrect numbers")
	assert.NotContains(t, out, "FAIL")
}

// flipAt flips the low bit of the output at one stream position.
type flipAt struct {
	*mt19937.Generator
	at  uint64
	pos uint64
}

func (f *flipAt) Seed(seed uint32)       { f.Generator.Seed(seed); f.pos = 0 }
func (f *flipAt) SeedArray(key []uint32) { f.Generator.SeedArray(key); f.pos = 0 }
func (f *flipAt) Discard(n uint64)       { f.Generator.Discard(n); f.pos += n }

func (f *flipAt) Uint32() uint32 {
	v := f.Generator.Uint32()
	if f.pos == f.at {
		v ^= 1
	}
	f.pos++
	return v
}

func TestVerifyReportsMismatch(t *testing.T) {
	saved := newStream
	t.Cleanup(func() { newStream = saved })
	newStream = func() reference.Stream {
		return &flipAt{Generator: mt19937.New(1), at: 9999}
	}

	out, _, err := runCLI(t, config.Default(), "verify")
	require.Error(t, err)
	assert.Contains(t, out, "default seed, value 10000")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "#9999: got 4123659994 want 4123659995")
	assert.Contains(t, out, "Found 1 incorrect numbers")
}

func TestStats(t *testing.T) {
	out, _, err := runCLI(t, config.Default(), "stats", "-s", "1,2", "-n", "10000", "-b", "10", "-a", "1e-9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "seed=1 "))
	assert.True(t, strings.HasPrefix(lines[1], "seed=2 "))
	for _, l := range lines {
		assert.True(t, strings.HasSuffix(l, " ok"), l)
	}
}

func TestStatsRejectsSparseBins(t *testing.T) {
	_, _, err := runCLI(t, config.Default(), "stats", "-n", "10", "-b", "10")
	assert.Error(t, err)
}

func TestStatsFailure(t *testing.T) {
	// No chi-square p-value reaches alpha=1 unless every bin is exactly full.
	out, _, err := runCLI(t, config.Default(), "stats", "-n", "10000", "-b", "10", "-a", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 streams failed")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), " FAIL"), out)
}
