package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamirms/seek"
	seekerrors "github.com/tamirms/seek/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGenThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.skds")

	out, err := execute(t, "gen", "--n", "20000", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 20000 sequential values")

	out, err = execute(t, "run", "--data", path, "--target", "17500")
	require.NoError(t, err)
	for _, name := range []string{"linear", "find", "parallel", "binary", "hash"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "worker=upper")
	assert.Contains(t, out, "17500")
}

func TestRunShuffledSkipsBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shuf.skds")
	_, err := execute(t, "gen", "--n", "5000", "--kind", "shuffled", "--seed", "3", "--out", path)
	require.NoError(t, err)

	out, err := execute(t, "run", "--data", path, "--hasher", "murmur3")
	require.NoError(t, err)
	assert.NotContains(t, out, "binary")
	assert.Contains(t, out, "murmur3")
}

func TestRunMissingTarget(t *testing.T) {
	out, err := execute(t, "run", "--n", "1000", "--target", "5000", "--threshold", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "-1")
	assert.Contains(t, out, "worker=none")
}

func TestRunRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "run", "--n", "10", "--policy", "fastest")
	assert.Error(t, err)

	_, err = execute(t, "run", "--n", "10", "--hasher", "crc32")
	assert.Error(t, err)

	_, err = execute(t, "run", "--n", "20000", "--order", "outer-first")
	assert.ErrorIs(t, err, seekerrors.ErrIncompatibleOptions)

	_, err = execute(t, "run", "--data", filepath.Join(t.TempDir(), "absent.skds"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunDataAndSizeAreExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.skds")
	_, err := execute(t, "gen", "--n", "100", "--out", path)
	require.NoError(t, err)

	_, err = execute(t, "run", "--data", path, "--n", "5000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data")
}

func TestParallelFlagDefaults(t *testing.T) {
	cmd := newRootCmd()
	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	assert.Equal(t, strconv.Itoa(seek.DefaultInlineThreshold), run.Flags().Lookup("threshold").DefValue)
	assert.Equal(t, strconv.Itoa(seek.DefaultCheckInterval), run.Flags().Lookup("check-interval").DefValue)
}

func TestRunOuterFirst(t *testing.T) {
	out, err := execute(t, "run", "--n", "20000", "--policy", "first-report", "--order", "outer-first")
	require.NoError(t, err)
	assert.Contains(t, out, "parallel")
}

func TestRunCorruptDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.skds")
	_, err := execute(t, "gen", "--n", "100", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[40] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = execute(t, "run", "--data", path)
	assert.ErrorIs(t, err, seekerrors.ErrChecksumFailed)
}

func TestGenRequiresOut(t *testing.T) {
	_, err := execute(t, "gen", "--n", "10")
	assert.Error(t, err)

	_, err = execute(t, "gen", "--kind", "random", "--out", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--sizes", "100,2000", "--reps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "speedup")
	assert.Contains(t, out, "2000")

	_, err = execute(t, "sweep", "--sizes", "100", "--reps", "0")
	assert.Error(t, err)

	_, err = execute(t, "sweep", "--sizes", "0", "--reps", "1")
	assert.Error(t, err)
}

func TestProfileFillsUnsetFlags(t *testing.T) {
	profile := writeProfile(t, `
[parallel]
threshold = 0

[sweep]
sizes = [128]
reps = 1
`)

	out, err := execute(t, "--profile", profile, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "128")
	assert.NotContains(t, out, "10000000")

	// n=100 is below the default threshold, so only the profile's zero
	// threshold sends the search to a worker.
	out, err = execute(t, "--profile", profile, "run", "--n", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "worker=upper")

	out, err = execute(t, "--profile", profile, "run", "--n", "100", "--threshold", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "inline")
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := loadProfile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = loadProfile(writeProfile(t, "[parallel\nthreshold = 1"))
	assert.Error(t, err)

	_, err = loadProfile(writeProfile(t, "[parallel]\ntimeout = \"soon\""))
	assert.Error(t, err)

	p, err := loadProfile(writeProfile(t, "[parallel]\ntimeout = \"2s\"\npolicy = \"first-report\""))
	require.NoError(t, err)
	assert.Equal(t, "2s", p.Parallel.Timeout)
	assert.Equal(t, "first-report", p.Parallel.Policy)
	assert.Nil(t, p.Parallel.Threshold)
}

func TestCheckAgreement(t *testing.T) {
	values := []int64{1, 2, 2, 3}

	assert.NoError(t, checkAgreement(values, 2, []measurement{
		{name: "linear", index: 1},
		{name: "parallel", index: 1},
		{name: "binary", index: 2},
	}))

	err := checkAgreement(values, 2, []measurement{
		{name: "linear", index: 1},
		{name: "hash", index: 2},
		{name: "binary", index: 3},
	})
	assert.ErrorIs(t, err, errDisagreement)
	assert.Contains(t, err.Error(), "hash returned 2")
	assert.Contains(t, err.Error(), "binary returned 3")
}
