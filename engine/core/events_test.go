package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listener struct{ name string }

func TestEventRegisterAndFire(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	var order []string
	a, b := &listener{"a"}, &listener{"b"}
	handler := func(handled bool) FnOnEvent {
		return func(ctx EventContext, l interface{}) bool {
			order = append(order, l.(*listener).name)
			return handled
		}
	}

	assert.True(t, EventRegister(EVENT_CODE_SCENE_LOADED, a, handler(false)))
	assert.True(t, EventRegister(EVENT_CODE_SCENE_LOADED, b, handler(false)))
	assert.False(t, EventRegister(EVENT_CODE_SCENE_LOADED, a, handler(false)), "duplicate listener")

	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_SCENE_LOADED}))
	assert.Equal(t, []string{"a", "b"}, order)

	assert.True(t, EventUnregister(EVENT_CODE_SCENE_LOADED, a))
	assert.False(t, EventUnregister(EVENT_CODE_SCENE_LOADED, a))

	order = nil
	EventFire(EventContext{Type: EVENT_CODE_SCENE_LOADED})
	assert.Equal(t, []string{"b"}, order)
}

func TestEventFireStopsWhenHandled(t *testing.T) {
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()

	calls := 0
	first := func(ctx EventContext, l interface{}) bool { calls++; return true }
	second := func(ctx EventContext, l interface{}) bool { calls++; return false }
	EventRegister(EVENT_CODE_APPLICATION_QUIT, &listener{"first"}, first)
	EventRegister(EVENT_CODE_APPLICATION_QUIT, &listener{"second"}, second)

	assert.True(t, EventFire(EventContext{Type: EVENT_CODE_APPLICATION_QUIT}))
	assert.Equal(t, 1, calls)
}

func TestEventSystemShutdownDropsListeners(t *testing.T) {
	require.True(t, EventSystemInitialize())
	EventRegister(EVENT_CODE_RESIZED, &listener{}, func(EventContext, interface{}) bool { return true })
	require.NoError(t, EventSystemShutdown())

	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
	require.True(t, EventSystemInitialize())
	defer EventSystemShutdown()
	assert.False(t, EventFire(EventContext{Type: EVENT_CODE_RESIZED}))
}
