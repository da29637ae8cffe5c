// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JHagemeister/MonteCrystal-sub001/observable"
)

var (
	ringFile   = filepath.Join("..", "..", "config", "testdata", "ring.yaml")
	squareFile = filepath.Join("..", "..", "config", "testdata", "square.yaml")
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestEnergyCmd(t *testing.T) {
	out, _, err := run(t, "energy", ringFile)
	require.NoError(t, err)
	assert.Equal(t, "Exchange\t-4\ntotal\t-4\n", out)
}

func TestFieldCmd(t *testing.T) {
	out, _, err := run(t, "field", ringFile)
	require.NoError(t, err)
	assert.Equal(t, "0\t0\t0\t2\n1\t0\t0\t2\n2\t0\t0\t2\n3\t0\t0\t2\n", out)

	out, _, err = run(t, "field", ringFile, "--site", "3")
	require.NoError(t, err)
	assert.Equal(t, "3\t0\t0\t2\n", out)

	_, _, err = run(t, "field", ringFile, "--site", "4")
	assert.Error(t, err)
}

func TestWindingCmd(t *testing.T) {
	out, _, err := run(t, "winding", squareFile)
	require.NoError(t, err)
	assert.Equal(t, "Q\t0\n", out, "uniform configuration is trivial")

	_, _, err = run(t, "winding", ringFile)
	assert.ErrorIs(t, err, observable.ErrMissingTopology)
}

func TestMeasureCmd(t *testing.T) {
	out, _, err := run(t, "measure", ringFile, "--temperature", "10", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "#\tlabel\tT\t<E_Exchange>\t<E_total>\tC\t")
	assert.Contains(t, out, "\nT=10\t10\t-4\t-4\t0\t")
	assert.Contains(t, out, "spinlab_ensemble_points_total 1\n")
	assert.Contains(t, out, `spinlab_ensemble_mean{column="<E_total>",point="T=10"} -4`)

	out, _, err = run(t, "measure", squareFile, "--label", "square")
	require.NoError(t, err)
	assert.Contains(t, out, "\t<Q>\tVar(Q)\n")
	assert.Contains(t, out, "\nsquare\t1\t")
	assert.NotContains(t, out, "spinlab_ensemble")

	_, _, err = run(t, "measure", ringFile, "--temperature", "0")
	assert.Error(t, err)
}

func TestVerboseLogging(t *testing.T) {
	_, errOut, err := run(t, "energy", ringFile, "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "system built")
	assert.Contains(t, errOut, "sites=4")
}

func TestMissingFile(t *testing.T) {
	_, _, err := run(t, "energy", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
