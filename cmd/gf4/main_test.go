package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppopth/threshold-algebra/field"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	expected := []string{
		"alpha+1",
		"y: 1",
		"1.x^2 + 1.x + alpha",
		"alpha",
		"0",
		"1.x",
		"alpha",
	}
	assert.Equal(t, expected, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestTables(t *testing.T) {
	out, err := execute(t, "tables")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Three tables of five lines separated by blank lines
	require.Len(t, lines, 17)
	assert.Equal(t, []string{"/", "0", "1", "alpha", "alpha+1"}, strings.Fields(lines[12]))
	assert.Equal(t, []string{"1", "-", "1", "alpha+1", "alpha"}, strings.Fields(lines[14]))
}

func TestEval(t *testing.T) {
	out, err := execute(t, "eval", "--coeffs", "1,alpha+1,alpha", "--at", "alpha+1")
	require.NoError(t, err)
	assert.Equal(t, "p(x) = alpha.x^2 + alpha+1.x + 1\np(alpha+1) = 0\n", out)

	_, err = execute(t, "eval", "--coeffs", "1,beta")
	assert.ErrorIs(t, err, field.ErrDomain)

	_, err = execute(t, "eval", "--coeffs", "0,0,0,0,0,0,0,0,1")
	assert.Error(t, err)
}

func TestInterpolate(t *testing.T) {
	out, err := execute(t, "interpolate", "--xs", "1,alpha", "--ys", "1,alpha")
	require.NoError(t, err)
	assert.Equal(t, "p(x) = 1.x\n", out)

	_, err = execute(t, "interpolate", "--xs", "1,1", "--ys", "0,1")
	assert.ErrorIs(t, err, field.ErrDivisionByZero)

	_, err = execute(t, "interpolate", "--xs", "1,alpha", "--ys", "1")
	assert.Error(t, err)
}

func TestShare(t *testing.T) {
	out, err := execute(t, "share", "--threshold", "2", "hi")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "x=1 ["))
	assert.True(t, strings.HasPrefix(lines[1], "x=alpha ["))
	assert.True(t, strings.HasPrefix(lines[2], "x=alpha+1 ["))
	assert.Equal(t, `recovered: "hi"`, lines[3])

	_, err = execute(t, "share", "--threshold", "4", "hi")
	assert.Error(t, err)
}
