package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/on-the-ground/sieve_ive_go/cmd"
	"github.com/on-the-ground/sieve_ive_go/fixture"
	"github.com/on-the-ground/sieve_ive_go/sieve"
	"github.com/on-the-ground/sieve_ive_go/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rc := cmd.NewRootCommand(&out, &errOut)
	rc.SetArgs(args)
	err = rc.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	for _, sub := range []string{"list", "bench", "verify"} {
		assert.Contains(t, out, sub)
	}
}

func TestListCommand(t *testing.T) {
	for _, variant := range []string{sieve.NameBasic, sieve.NameFunctional, sieve.NameBitPacked} {
		t.Run(variant, func(t *testing.T) {
			out, _, err := execute(t, "list", "30", "--variant", variant)
			require.NoError(t, err)
			assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", out)
		})
	}
}

func TestListCommand_Empty(t *testing.T) {
	out, _, err := execute(t, "list", "1")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListCommand_Count(t *testing.T) {
	out, _, err := execute(t, "list", "100", "--count", "--variant", sieve.NameBitPacked)
	require.NoError(t, err)
	assert.Equal(t, "25\n", out)
}

func TestListCommand_Fingerprint(t *testing.T) {
	fp, err := verify.Inspect(1000, sieve.Basic(1000))
	require.NoError(t, err)

	out, _, err := execute(t, "list", "1000", "--fingerprint", "--variant", sieve.NameFunctional)
	require.NoError(t, err)
	assert.Equal(t, fp.String()+"\n", out)
}

func TestListCommand_BadInput(t *testing.T) {
	_, _, err := execute(t, "list", "abc")
	assert.ErrorContains(t, err, `parsing limit "abc"`)

	_, _, err = execute(t, "list", "10", "--variant", "segmented")
	assert.ErrorIs(t, err, sieve.ErrUnknownVariant)

	_, _, err = execute(t, "list")
	assert.Error(t, err)
}

func TestVerifyCommand(t *testing.T) {
	out, stderr, err := execute(t, "verify", "--from", "0", "--to", "200", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "limits [0, 200)")
	for _, v := range []string{sieve.NameBasic, sieve.NameFunctional, sieve.NameBitPacked} {
		assert.Contains(t, strings.ToLower(out), v)
	}
	assert.Contains(t, stderr, "verification finished")
}

func TestVerifyCommand_OutOfFixture(t *testing.T) {
	_, _, err := execute(t, "verify", "--from", "10", "--to", "20000")
	assert.ErrorIs(t, err, verify.ErrOutOfFixture)
}

func TestVerifyCommand_ExternalFixture(t *testing.T) {
	path := writeFile(t, "primes.txt", "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n")

	_, _, err := execute(t, "verify", "--fixture", path, "--from", "0", "--to", "30", "--bound", "30")
	require.NoError(t, err)

	// 29 is the largest prime listed, so 30 is beyond what the list proves.
	_, _, err = execute(t, "verify", "--fixture", path, "--from", "0", "--to", "31")
	assert.ErrorIs(t, err, verify.ErrOutOfFixture)
}

func TestVerifyCommand_WrongFixture(t *testing.T) {
	// 9 listed as prime makes every variant disagree at limit 9.
	path := writeFile(t, "primes.txt", "2\n3\n5\n7\n9\n11\n")

	_, stderr, err := execute(t, "verify", "--fixture", path, "--from", "9", "--to", "10", "--bound", "11")
	assert.ErrorIs(t, err, verify.ErrLastElement)
	assert.ErrorContains(t, err, "verification failed with 3 error(s)")
	assert.Equal(t, 2, strings.Count(stderr, verify.ErrLastElement.Error()))
}

func TestVerifyCommand_MalformedFixture(t *testing.T) {
	path := writeFile(t, "primes.txt", "2\n3\nfive\n")
	_, _, err := execute(t, "verify", "--fixture", path)
	assert.ErrorIs(t, err, fixture.ErrMalformed)
}

func TestBenchCommand(t *testing.T) {
	path := writeFile(t, "primes.yaml", `
log:
  level: debug
bench:
  cases:
    - limit: 10
      duration: 50ms
      samples: 3
    - limit: 1000
      duration: 50ms
      samples: 2
`)

	out, stderr, err := execute(t, "bench", "-c", path, "--variant", "basic,bitpacked")
	require.NoError(t, err)
	assert.Contains(t, out, "bitpacked")
	assert.NotContains(t, out, "functional")
	assert.Contains(t, out, "1000")
	assert.Contains(t, stderr, `"level":"debug"`)
}

func TestBenchCommand_RowSelection(t *testing.T) {
	path := writeFile(t, "primes.yaml", `
bench:
  cases:
    - {limit: 10, duration: 50ms, samples: 1}
    - {limit: 777, duration: 50ms, samples: 1}
`)

	out, _, err := execute(t, "bench", "-c", path, "--from", "1", "--variant", "functional")
	require.NoError(t, err)
	assert.Contains(t, out, "777")

	_, _, err = execute(t, "bench", "-c", path, "--from", "3")
	assert.Error(t, err)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "list", "10", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRootCommand_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "list", "10", "-c", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "error reading configuration file")
}
