package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalign/dnagen"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := New(&errOut, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestAlignCommand(t *testing.T) {
	out, stderr, err := execute(t, "align", "GAT", "GT")
	require.NoError(t, err)

	assert.Contains(t, out, "alignment 1")
	assert.Contains(t, out, "GAT")
	assert.Contains(t, out, "| |")
	assert.Contains(t, out, "G-T")
	assert.NotContains(t, out, "alignment 2")
	assert.Contains(t, stderr, "Aligned 3x2")
}

func TestAlignCommandAllTies(t *testing.T) {
	out, _, err := execute(t, "align", "--all", "0", "A", "AA")
	require.NoError(t, err)
	assert.Contains(t, out, "alignment 1")
	assert.Contains(t, out, "alignment 2")
	assert.NotContains(t, out, "alignment 3")
}

func TestAlignCommandJSON(t *testing.T) {
	out, _, err := execute(t, "align", "-p", "levenshtein", "--json", "kitten", "sitting")
	require.NoError(t, err)

	var reports []struct {
		Score int64 `json:"score"`
		Steps []struct {
			Op string `json:"op"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, int64(3), reports[0].Score)
	assert.Len(t, reports[0].Steps, 7)
}

func TestAlignCommandLocalNoMatch(t *testing.T) {
	out, _, err := execute(t, "align", "-p", "local", "AAA", "CCC")
	require.NoError(t, err)
	assert.Contains(t, out, "no alignment found")
}

func TestAlignCommandMatrix(t *testing.T) {
	out, _, err := execute(t, "align", "--matrix", "GAT", "GT")
	require.NoError(t, err)
	assert.Contains(t, out, emptyLabel)
	assert.Contains(t, out, "-1 A")
}

func TestAlignCommandFlagOverrides(t *testing.T) {
	out, _, err := execute(t, "align", "--json", "--gap", "5", "GAT", "GT")
	require.NoError(t, err)

	var reports []struct {
		Score int64 `json:"score"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	// G/G -1, A/- 5, T/T -1.
	assert.Equal(t, int64(3), reports[0].Score)
}

func TestAlignCommandConfigProfile(t *testing.T) {
	path := writeConfig(t, "[profile.edit]\nbase = \"levenshtein\"\n")
	out, _, err := execute(t, "--config", path, "-p", "edit", "align", "--json", "kitten", "sitting")
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 3`)
}

func TestAlignCommandErrors(t *testing.T) {
	_, _, err := execute(t, "align", "-p", "blast", "A", "C")
	assert.ErrorIs(t, err, ErrUnknownProfile)

	_, _, err = execute(t, "align", "--strategy", "semi", "A", "C")
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, _, err = execute(t, "align", "--backend", "tape", "A", "C")
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, _, err = execute(t, "align", "A")
	assert.Error(t, err)
}

func TestAlignCommandCanceled(t *testing.T) {
	var out, errOut bytes.Buffer
	root := New(&errOut, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"align", "GAT", "GT"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := root.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerboseEnablesEngineLogs(t *testing.T) {
	_, stderr, err := execute(t, "-v", "align", "GAT", "GT")
	require.NoError(t, err)
	assert.Contains(t, stderr, "alignment matrix allocated")
	assert.Contains(t, stderr, "forward pass complete")
	assert.Contains(t, stderr, "using profile")

	_, stderr, err = execute(t, "align", "GAT", "GT")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "forward pass complete")
}

func TestDTWCommand(t *testing.T) {
	out, _, err := execute(t, "dtw", "--path", "0,1,2", "0,1,1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "distance")
	assert.Contains(t, out, "(0,0)")
	assert.Contains(t, out, "(2,3)")
}

func TestDTWCommandJSON(t *testing.T) {
	out, _, err := execute(t, "dtw", "--json", "--path", "0, 1, 2", "0,1,1,2")
	require.NoError(t, err)

	var res struct {
		Distance *float64 `json:"distance"`
		Path     []struct {
			I int `json:"i"`
			J int `json:"j"`
		} `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotNil(t, res.Distance)
	assert.Zero(t, *res.Distance)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, 0, res.Path[0].I)
	assert.Equal(t, 2, res.Path[len(res.Path)-1].I)
	assert.Equal(t, 3, res.Path[len(res.Path)-1].J)
}

func TestDTWCommandErrors(t *testing.T) {
	_, _, err := execute(t, "dtw", "1,x", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "dtw", ",", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "dtw", "--window=-2", "1", "1")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := execute(t, "generate", "--length", "24", "--seed", "7")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 24)
	for _, b := range []byte(lines[0]) {
		assert.Contains(t, dnagen.Alphabet, string(b))
	}

	again, _, err := execute(t, "generate", "--length", "24", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateCommandMutate(t *testing.T) {
	out, _, err := execute(t, "generate", "--length", "30", "--mutate", "0.2", "--uniform")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 30)

	_, _, err = execute(t, "generate", "--mutate", "2")
	assert.ErrorIs(t, err, dnagen.ErrBadRate)

	_, _, err = execute(t, "generate", "--length=-1")
	assert.ErrorIs(t, err, dnagen.ErrNegativeLength)
}
