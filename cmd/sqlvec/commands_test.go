package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeCmd(t *testing.T) {
	out, err := run(t, encodeCmd(), "[1,2]")
	require.NoError(t, err)
	assert.Equal(t, "0000803f0000004001\n", out)

	out, err = run(t, encodeCmd(), "--type", "float64", "[1]")
	require.NoError(t, err)
	assert.Equal(t, "000000000000f03f02\n", out)

	_, err = run(t, encodeCmd(), "[1.1.1]")
	assert.ErrorContains(t, err, "invalid number: '1.1.1'")
}

func TestExtractCmd(t *testing.T) {
	out, err := run(t, extractCmd(), "0000803f0000004001")
	require.NoError(t, err)
	assert.Equal(t, "[1,2]\n", out)

	out, err = run(t, extractCmd(), " [ 3 , 4 ] ")
	require.NoError(t, err)
	assert.Equal(t, "[3,4]\n", out)

	_, err = run(t, extractCmd(), "0000000000")
	assert.ErrorContains(t, err, "unexpected type: 0")

	_, err = run(t, extractCmd(), "--strict", "0000803f")
	assert.ErrorContains(t, err, "missing type trailer")

	_, err = run(t, extractCmd(), "zz")
	assert.ErrorContains(t, err, "invalid hex")
}

func TestDistanceCmd(t *testing.T) {
	out, err := run(t, distanceCmd(), "[1,2]", "[2,1]")
	require.NoError(t, err)
	assert.Equal(t, "0.200000002980232\n", out)

	out, err = run(t, distanceCmd(), "--metric", "l2", "--type", "f64", "[0,0]", "[3,4]")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, distanceCmd(), "[1,2]", "0000000000000040000000000000f03f02")
	require.NoError(t, err)
	assert.Equal(t, "0.2\n", out)

	_, err = run(t, distanceCmd(), "[1,2]", "[1,2,3]")
	assert.ErrorContains(t, err, "vectors must have the same length")

	_, err = run(t, distanceCmd(), "0000803f01", "000000000000f03f02")
	assert.ErrorContains(t, err, "vectors must have the same type")
}
