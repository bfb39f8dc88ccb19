package submission

import (
	"testing"

	festfusion_errors "festfusion/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftLifecycle(t *testing.T) {
	d := &Draft{State: StateEmpty}

	require.NoError(t, d.Transition(StateUploaded))
	require.NoError(t, d.Transition(StateSummarized))
	require.NoError(t, d.Transition(StateEdited))
	// Edits may be repeated before saving.
	require.NoError(t, d.Transition(StateEdited))
	require.NoError(t, d.Transition(StateSaved))
}

func TestConfirmWithoutEditIsLegal(t *testing.T) {
	d := &Draft{State: StateSummarized}
	assert.NoError(t, d.Transition(StateSaved))
}

func TestIllegalTransitionsLeaveStateUntouched(t *testing.T) {
	cases := []struct {
		from State
		to   State
	}{
		{StateEmpty, StateSummarized},
		{StateEmpty, StateSaved},
		{StateUploaded, StateSaved},
		{StateUploaded, StateEdited},
		{StateSaved, StateEdited},
		{StateSaved, StateUploaded},
	}
	for _, tc := range cases {
		d := &Draft{State: tc.from}
		err := d.Transition(tc.to)
		assert.ErrorIs(t, err, festfusion_errors.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, d.State)
	}
}

func TestParseLanguageMode(t *testing.T) {
	assert.Equal(t, LanguageEN, ParseLanguageMode("EN"))
	assert.Equal(t, LanguageTE, ParseLanguageMode("TE"))
	assert.Equal(t, LanguageENTE, ParseLanguageMode("EN_TE"))
	assert.Equal(t, LanguageENTE, ParseLanguageMode(""))
	assert.Equal(t, LanguageENTE, ParseLanguageMode("telugu"))
}
