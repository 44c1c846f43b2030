package backspace

import (
	"testing"
	"time"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/f3rmion/jamobs/internal/typist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCapturer struct {
	text  string
	calls int
	// during runs inside the capture step, while the trigger is in progress.
	during func()
}

func (s *stubCapturer) CapturePrecedingCharacter() string {
	s.calls++
	if s.during != nil {
		s.during()
	}
	return s.text
}

func newTestOrchestrator(capture Capturer) (*Orchestrator, *keys.Recorder) {
	rec := keys.NewRecorder(nil)
	ty := typist.New(rec, nil, typist.DefaultTiming(), nil)
	ty.Sleep = func(time.Duration) {}

	o := New(capture, ty, nil)
	o.Sleep = func(time.Duration) {}
	return o, rec
}

func TestTrigger_PeelsCompoundTrailing(t *testing.T) {
	o, rec := newTestOrchestrator(&stubCapturer{text: "읽"})

	out, ok := o.Trigger()

	require.True(t, ok)
	assert.False(t, out.Fallback)
	assert.Equal(t, "ㅇㅣㄹ", string(out.Retyped))
	assert.Equal(t, "backspace↓ backspace↑ d↓ d↑ l↓ l↑ f↓ f↑", rec.String())
	assert.Equal(t, StateIdle, o.State())
}

func TestTrigger_StandaloneLetterIsDeletedOnly(t *testing.T) {
	o, rec := newTestOrchestrator(&stubCapturer{text: "ㅎ"})

	out, ok := o.Trigger()

	require.True(t, ok)
	assert.False(t, out.Fallback)
	assert.Empty(t, out.Retyped)
	assert.Equal(t, keys.Tap(keys.KeyBackspace), rec.Events())
}

func TestTrigger_TenseLeadRetypedWithShift(t *testing.T) {
	o, rec := newTestOrchestrator(&stubCapturer{text: "까"})

	_, ok := o.Trigger()

	require.True(t, ok)
	assert.Equal(t, "backspace↓ backspace↑ shift↓ r↓ r↑ shift↑", rec.String())
}

func TestTrigger_AmbiguousCaptureFallsBack(t *testing.T) {
	for _, captured := range []string{"", "가나", "abc", "\r\n"} {
		t.Run(captured, func(t *testing.T) {
			o, rec := newTestOrchestrator(&stubCapturer{text: captured})

			out, ok := o.Trigger()

			require.True(t, ok)
			assert.True(t, out.Fallback)
			assert.Empty(t, out.Retyped)
			assert.Equal(t, keys.Tap(keys.KeyBackspace), rec.Events())
		})
	}
}

func TestTrigger_AlwaysOneDelete(t *testing.T) {
	for _, captured := range []string{"각", "가", "닭", "a", "ㄱ", "字"} {
		o, rec := newTestOrchestrator(&stubCapturer{text: captured})
		o.Trigger()
		assert.Equal(t, 1, rec.Count(keys.KeyBackspace), captured)
	}
}

func TestTrigger_IgnoresReentrantTrigger(t *testing.T) {
	capture := &stubCapturer{text: "각"}
	o, rec := newTestOrchestrator(capture)

	var nested bool
	var stateDuring State
	capture.during = func() {
		stateDuring = o.State()
		_, nested = o.Trigger()
	}

	_, ok := o.Trigger()

	require.True(t, ok)
	assert.False(t, nested, "second trigger must be ignored while busy")
	assert.Equal(t, StateCapturing, stateDuring)
	assert.Equal(t, 1, capture.calls)
	assert.Equal(t, 1, rec.Count(keys.KeyBackspace))

	// Back to idle, so the next activation runs.
	capture.during = nil
	_, ok = o.Trigger()
	assert.True(t, ok)
	assert.Equal(t, 2, capture.calls)
}

func TestTrigger_DeleteSettleBeforeRetype(t *testing.T) {
	o, _ := newTestOrchestrator(&stubCapturer{text: "각"})
	var pauses []time.Duration
	o.Sleep = func(d time.Duration) { pauses = append(pauses, d) }

	o.Trigger()

	assert.Equal(t, []time.Duration{o.DeleteSettle}, pauses)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "retyping", StateRetyping.String())
	assert.Equal(t, "unknown", State(42).String())
}
