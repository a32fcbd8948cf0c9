package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigenspace/eigenspace"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRealize_Text(t *testing.T) {
	out, _, err := run(t, "realize", testdata("triangle.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "v0 = [1, 0]\nv1 = [1/2, 1/2 * sqrt(3)]\nv2 = [-1/2, 1/2 * sqrt(3)]\n", out)
}

func TestRealize_YAML(t *testing.T) {
	out, _, err := run(t, "realize", "-o", "yaml", testdata("equiangular.yaml"))
	require.NoError(t, err)

	var got realization
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "equiangular", got.Name)
	assert.Equal(t, 3, got.Dimension)
	require.Len(t, got.Vectors, 3)
	assert.Equal(t, []string{"1/2", "1/6 * sqrt(3)", "1/3 * sqrt(6)"}, got.Vectors[2])

	_, _, err = run(t, "realize", "-o", "xml", testdata("equiangular.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported --output")
}

func TestRealize_Infeasible(t *testing.T) {
	out, _, err := run(t, "realize", testdata("exhausted.yaml"))
	require.ErrorIs(t, err, eigenspace.ErrDimensionExhausted)
	assert.Contains(t, out, "infeasible: eigenspace: the norm of the obtained vector is smaller than one")
	assert.Contains(t, out, "solving:  v2")
	assert.Contains(t, out, "row:      2")
	assert.Contains(t, out, "residual: 2/3")
	assert.Contains(t, out, "vector:   [1/2, 1/6 * sqrt(3)]")
}

func TestVector_Command(t *testing.T) {
	out, _, err := run(t, "vector", testdata("triangle.yaml"), "--rows", "2", "--targets", "1,2")
	require.NoError(t, err)
	assert.Equal(t, "v = [-1/2, 1/2 * sqrt(3)]\n", out)

	_, _, err = run(t, "vector", testdata("triangle.yaml"), "--rows", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--rows must be in [1,3]")

	_, _, err = run(t, "vector", testdata("triangle.yaml"), "--rows", "1", "--targets", "0,1")
	require.ErrorIs(t, err, eigenspace.ErrIndexShape)
}

func TestCheck_Command(t *testing.T) {
	out, _, err := run(t, "check", testdata("tetrahedron.yaml"), "--prec", "128")
	require.NoError(t, err)
	assert.Contains(t, out, "exact: ok")
	assert.Contains(t, out, "gram (prec 128):")
	assert.Contains(t, out, "max |gram - table| =")
}

func TestRoot_Logging(t *testing.T) {
	_, stderr, err := run(t, "--json-log", "--log-level", "debug", "realize", testdata("triangle.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"problem loaded"`)
	assert.Contains(t, stderr, `"message":"new pivot"`)
	assert.Contains(t, stderr, `"run":"`)

	_, stderr, err = run(t, "realize", testdata("triangle.yaml"))
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "--log-level", "loud", "realize", testdata("triangle.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestRoot_BadInput(t *testing.T) {
	_, _, err := run(t, "realize", testdata("missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read problem file")

	_, _, err = run(t, "realize")
	require.Error(t, err)
}

func TestGenerate_Command(t *testing.T) {
	out, _, err := run(t, "generate", "tetrahedron")
	require.NoError(t, err)
	assert.Contains(t, out, "name: tetrahedron")
	assert.Contains(t, out, "dimension: 3")

	path := filepath.Join(t.TempDir(), "cube.yaml")
	_, _, err = run(t, "generate", "hypercube", "-n", "3", "-f", path)
	require.NoError(t, err)
	out, _, err = run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exact: ok")

	out, _, err = run(t, "generate", "equiangular", "-n", "3", "--cos", "1/2", "--dim", "2")
	require.NoError(t, err)
	path = filepath.Join(t.TempDir(), "eq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	_, _, err = run(t, "realize", path)
	require.ErrorIs(t, err, eigenspace.ErrDimensionExhausted)

	_, _, err = run(t, "generate", "moebius")
	require.Error(t, err)
	_, _, err = run(t, "generate", "equiangular", "--cos", "half")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --cos")
}

// syncBuffer is a bytes.Buffer safe for a concurrent writer and reader.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestWatch_RerunsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	triangle, err := os.ReadFile(testdata("triangle.yaml"))
	require.NoError(t, err)
	exhausted, err := os.ReadFile(testdata("exhausted.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, triangle, 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &syncBuffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"watch", path})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "v2 = [-1/2, 1/2 * sqrt(3)]")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, exhausted, 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "infeasible:")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, _, err := run(t, "watch", filepath.Join(t.TempDir(), "no", "such", "p.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
