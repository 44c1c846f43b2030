package typist

import (
	"errors"
	"testing"
	"time"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTypist(inj keys.Injector) (*Typist, *[]time.Duration) {
	var pauses []time.Duration
	ty := New(inj, nil, DefaultTiming(), nil)
	ty.Sleep = func(d time.Duration) { pauses = append(pauses, d) }
	return ty, &pauses
}

func TestTypeSequence_PlainLetters(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, _ := newTestTypist(rec)

	ty.TypeSequence([]rune("ㅇㅣㄹ"))

	assert.Equal(t, "d↓ d↑ l↓ l↑ f↓ f↑", rec.String())
}

func TestTypeSequence_TenseConsonantsUseShift(t *testing.T) {
	for letter, base := range keys.TenseConsonants {
		rec := keys.NewRecorder(nil)
		ty, _ := newTestTypist(rec)

		ty.TypeSequence([]rune{letter})

		assert.Equal(t, keys.Chord(keys.KeyShift, base), rec.Events(), "letter %q", letter)
	}
}

func TestTypeSequence_CompoundVowelTypesBothKeys(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, _ := newTestTypist(rec)

	ty.TypeSequence([]rune("ㄱㅘ"))

	assert.Equal(t, "r↓ r↑ h↓ h↑ k↓ k↑", rec.String())
}

func TestTypeSequence_ShiftedVowel(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, _ := newTestTypist(rec)

	ty.TypeSequence([]rune("ㅖ"))

	assert.Equal(t, "shift↓ p↓ p↑ shift↑", rec.String())
}

func TestTypeSequence_SkipsUnmapped(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, _ := newTestTypist(rec)

	ty.TypeSequence([]rune("ㄱxㅏ"))

	assert.Equal(t, "r↓ r↑ k↓ k↑", rec.String())
}

func TestTypeSequence_Pacing(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, pauses := newTestTypist(rec)
	timing := DefaultTiming()

	ty.TypeSequence([]rune("ㄱㄲ"))

	assert.Equal(t, []time.Duration{
		timing.KeyDelay, timing.LetterDelay,
		timing.ComboKeyDelay, timing.ComboKeyDelay, timing.ComboKeyDelay, timing.ComboKeyDelay,
		timing.TenseDelay,
	}, *pauses)
}

func TestSendKeyCombination(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, pauses := newTestTypist(rec)

	ty.SendKeyCombination(keys.Copy)

	assert.Equal(t, keys.Copy, rec.Events())
	assert.Len(t, *pauses, len(keys.Copy))
}

func TestTap(t *testing.T) {
	rec := keys.NewRecorder(nil)
	ty, pauses := newTestTypist(rec)

	ty.Tap(keys.KeyBackspace)

	assert.Equal(t, keys.Tap(keys.KeyBackspace), rec.Events())
	assert.Empty(t, *pauses)
}

type failingInjector struct{ calls int }

func (f *failingInjector) Press(keys.Key) error   { f.calls++; return errors.New("denied") }
func (f *failingInjector) Release(keys.Key) error { f.calls++; return errors.New("denied") }

func TestTypeSequence_InjectionErrorsAreNotFatal(t *testing.T) {
	inj := &failingInjector{}
	ty, _ := newTestTypist(inj)

	require.NotPanics(t, func() { ty.TypeSequence([]rune("ㄱㄲ")) })
	assert.Equal(t, 6, inj.calls)
}

func TestNew_CustomLayout(t *testing.T) {
	rec := keys.NewRecorder(nil)
	layout := keys.Layout{'ㄱ': {{Key: keys.KeyX}}}
	ty := New(rec, layout, Timing{}, nil)
	ty.Sleep = func(time.Duration) {}

	ty.TypeSequence([]rune("ㄱㄴ"))

	assert.Equal(t, "x↓ x↑", rec.String())
}
