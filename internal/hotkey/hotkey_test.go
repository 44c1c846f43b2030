package hotkey

import (
	"context"
	"testing"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.design/x/hotkey"
)

func TestResolve(t *testing.T) {
	b, err := keys.ParseBinding("shift+backspace")
	require.NoError(t, err)

	mods, key, err := Resolve(b)
	require.NoError(t, err)
	assert.Equal(t, []hotkey.Modifier{hotkey.ModShift}, mods)
	assert.Equal(t, platformKeys["backspace"], key)
}

func TestResolve_Letters(t *testing.T) {
	b, err := keys.ParseBinding("ctrl+alt+h")
	require.NoError(t, err)

	mods, key, err := Resolve(b)
	require.NoError(t, err)
	assert.Len(t, mods, 2)
	assert.Equal(t, hotkey.KeyH, key)
}

func TestResolve_UnknownKey(t *testing.T) {
	_, _, err := Resolve(keys.Binding{Modifiers: []string{"shift"}, Key: "f99"})
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, _, err = Resolve(keys.Binding{Modifiers: []string{"hyper"}, Key: "a"})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestRegister_InvalidBinding(t *testing.T) {
	_, err := Register("backspace")
	assert.ErrorIs(t, err, keys.ErrInvalidBinding)
}

func TestListen_DropsActivationsDuringHandling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan hotkey.Event, 8)
	events <- hotkey.Event{}

	calls := 0
	listen(ctx, events, func() {
		calls++
		// auto-repeat while the first activation is still being handled
		for i := 0; i < 3; i++ {
			events <- hotkey.Event{}
		}
		cancel()
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, events)
}

func TestListen_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	listen(ctx, make(chan hotkey.Event), func() { t.Fatal("unexpected activation") })
}

func TestListen_StopsWhenEventsClosed(t *testing.T) {
	events := make(chan hotkey.Event, 1)
	events <- hotkey.Event{}
	close(events)

	calls := 0
	listen(context.Background(), events, func() { calls++ })
	assert.Equal(t, 1, calls)
}
