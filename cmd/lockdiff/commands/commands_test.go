package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lockdiff/cmd/lockdiff/commands"
	"go.trai.ch/lockdiff/internal/app"
	"go.trai.ch/lockdiff/internal/core/domain"
)

// stubApp captures what the command layer hands to the application.
type stubApp struct {
	specA domain.SideSpec
	specB domain.SideSpec
	opts  app.RunOptions
	err   error
	calls int
}

func (s *stubApp) Run(_ context.Context, specA, specB domain.SideSpec, opts app.RunOptions) error {
	s.specA = specA
	s.specB = specB
	s.opts = opts
	s.calls++
	return s.err
}

func execute(t *testing.T, stub *stubApp, args ...string) (string, string, error) {
	t.Helper()
	cli := commands.New(stub)
	cli.SetArgs(args)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	err := cli.Execute(t.Context())
	return out.String(), errOut.String(), err
}

func TestExecute_MapsFlagsToSpecs(t *testing.T) {
	stub := &stubApp{}
	_, _, err := execute(t, stub,
		"a.lock", "b.lock",
		"--pkg-name-a", "myapp",
		"--pkg-hash-b", "deadbeef",
		"--exclude-pkg-a", "winapi,windows-sys",
		"--exclude-pkg-b", "winapi",
		"--verbose",
		"--strict",
	)
	require.NoError(t, err)
	require.Equal(t, 1, stub.calls)

	assert.Equal(t, "a.lock", stub.specA.Source)
	assert.Equal(t, domain.RootByName("myapp"), stub.specA.Root)
	assert.Equal(t, []string{"winapi", "windows-sys"}, stub.specA.Exclude)

	assert.Equal(t, "b.lock", stub.specB.Source)
	assert.Equal(t, domain.RootByHash("deadbeef"), stub.specB.Root)
	assert.Equal(t, []string{"winapi"}, stub.specB.Exclude)

	assert.True(t, stub.opts.Verbose)
	assert.True(t, stub.opts.Strict)
}

func TestExecute_DefaultsToAllRoots(t *testing.T) {
	stub := &stubApp{}
	_, _, err := execute(t, stub, "a.lock", "b.lock")
	require.NoError(t, err)
	assert.True(t, stub.specA.Root.IsAll())
	assert.True(t, stub.specB.Root.IsAll())
	assert.False(t, stub.opts.Verbose)
	assert.False(t, stub.opts.Strict)
}

func TestExecute_RequiresTwoArguments(t *testing.T) {
	stub := &stubApp{}
	_, _, err := execute(t, stub, "only-one.lock")
	require.Error(t, err)
	assert.Zero(t, stub.calls)
}

func TestExecute_HashAndNameAreMutuallyExclusive(t *testing.T) {
	stub := &stubApp{}
	_, _, err := execute(t, stub,
		"a.lock", "b.lock",
		"--pkg-name-a", "myapp",
		"--pkg-hash-a", "deadbeef",
	)
	require.Error(t, err)
	assert.Zero(t, stub.calls)
}

func TestExecute_PropagatesApplicationError(t *testing.T) {
	stub := &stubApp{err: domain.ErrVersionsDiffer}
	_, _, err := execute(t, stub, "a.lock", "b.lock")
	require.ErrorIs(t, err, domain.ErrVersionsDiffer)
}

func TestVersionCommand(t *testing.T) {
	stub := &stubApp{}
	out, _, err := execute(t, stub, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lockdiff version")
	assert.Zero(t, stub.calls)
}
