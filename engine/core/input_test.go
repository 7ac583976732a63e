package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPointerIsClamped(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.NoError(t, InputInitialize())
	defer InputShutdown()

	var moves []*MouseEvent
	EventRegister(EVENT_CODE_MOUSE_MOVED, t, func(ctx EventContext, _ interface{}) bool {
		moves = append(moves, ctx.Data.(*MouseEvent))
		return false
	})

	require.NoError(t, InputProcessPointer(2, -3))
	x, y := InputGetPointer()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(-1), y)

	// Same position again: no event.
	require.NoError(t, InputProcessPointer(1, -1))
	require.Len(t, moves, 1)
	assert.Equal(t, float32(1), moves[0].X)

	require.NoError(t, InputUpdate(0))
	require.NoError(t, InputProcessPointer(0.25, 0.5))
	px, py := InputGetPreviousPointer()
	assert.Equal(t, float32(1), px)
	assert.Equal(t, float32(-1), py)
}

func TestInputKeys(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	require.NoError(t, InputInitialize())
	defer InputShutdown()

	pressed := 0
	EventRegister(EVENT_CODE_KEY_PRESSED, t, func(ctx EventContext, _ interface{}) bool {
		assert.Equal(t, KEY_ESCAPE, ctx.Data.(*KeyEvent).KeyCode)
		pressed++
		return true
	})

	require.NoError(t, InputProcessKey(KEY_ESCAPE, true))
	require.NoError(t, InputProcessKey(KEY_ESCAPE, true))
	assert.Equal(t, 1, pressed)
	assert.True(t, InputIsKeyDown(KEY_ESCAPE))
	assert.False(t, InputWasKeyDown(KEY_ESCAPE))

	require.NoError(t, InputUpdate(0))
	assert.True(t, InputWasKeyDown(KEY_ESCAPE))
}

func TestInputNotInitialized(t *testing.T) {
	require.NoError(t, InputShutdown())
	assert.ErrorIs(t, InputProcessPointer(0, 0), ErrNotInitialized)
	x, y := InputGetPointer()
	assert.Zero(t, x)
	assert.Zero(t, y)
}
