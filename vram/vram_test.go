package vram

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
	fail  map[string]error
}

func (r *recorder) call(name string) error {
	r.calls = append(r.calls, name)
	return r.fail[name]
}

type fakeRemote struct{ *recorder }

func (f fakeRemote) UnloadCheckpoint(context.Context) error { return f.call("remote.unload") }
func (f fakeRemote) ReloadCheckpoint(context.Context) error { return f.call("remote.reload") }

type fakeHost struct{ *recorder }

func (f fakeHost) LoadModel(context.Context) error { return f.call("host.load") }
func (f fakeHost) UnloadModel(context.Context) error { return f.call("host.unload") }

func newArbiter() (*Arbiter, *recorder) {
	r := &recorder{fail: map[string]error{}}
	return NewArbiter(fakeRemote{r}, fakeHost{r}), r
}

func TestReserveThenRelease(t *testing.T) {
	a, r := newArbiter()
	ctx := context.Background()

	require.NoError(t, a.Reserve(ctx))
	require.NoError(t, a.Release(ctx))

	assert.Equal(t, []string{"host.unload", "remote.reload", "remote.unload", "host.load"}, r.calls)
}

func TestActivateDeactivate(t *testing.T) {
	a, r := newArbiter()
	ctx := context.Background()

	require.NoError(t, a.Activate(ctx))
	require.NoError(t, a.Deactivate(ctx))

	assert.Equal(t, []string{"remote.unload", "remote.reload"}, r.calls)
}

func TestRemoteFailureAborts(t *testing.T) {
	a, r := newArbiter()
	boom := errors.New("503 Service Unavailable")
	r.fail["remote.unload"] = boom

	err := a.Release(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"remote.unload"}, r.calls, "host must not reload after a failed unload")
}

func TestUnknownAction(t *testing.T) {
	a, r := newArbiter()

	err := a.Do(context.Background(), Action("juggle"))
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Empty(t, r.calls)
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"reserve":           ActionLoadImageModel,
		"RELEASE":           ActionLoadTextModel,
		"set":               ActionActivate,
		"reset":             ActionDeactivate,
		"load-text-model":   ActionLoadTextModel,
		" load-image-model": ActionLoadImageModel,
	}
	for in, want := range cases {
		got, err := ParseAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAction("swap")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
