package core

import "sync"

// EventContext carries the code of a fired event and its payload.
type EventContext struct {
	Type SystemEventCode
	Data interface{}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// Keyboard key pressed. Data: *KeyEvent
	EVENT_CODE_KEY_PRESSED SystemEventCode = 0x02

	// Keyboard key released. Data: *KeyEvent
	EVENT_CODE_KEY_RELEASED SystemEventCode = 0x03

	// Mouse button pressed. Data: *MouseEvent
	EVENT_CODE_BUTTON_PRESSED SystemEventCode = 0x04

	// Mouse button released. Data: *MouseEvent
	EVENT_CODE_BUTTON_RELEASED SystemEventCode = 0x05

	// Pointer moved. Data: *MouseEvent with normalized X/Y.
	EVENT_CODE_MOUSE_MOVED SystemEventCode = 0x06

	// Mouse wheel. Data: *MouseEvent
	EVENT_CODE_MOUSE_WHEEL SystemEventCode = 0x07

	// Resized/resolution changed from the OS. Data: *ResizeEvent
	EVENT_CODE_RESIZED SystemEventCode = 0x08

	// A scene graph finished loading and its instances replaced the old ones. Data: *SceneEvent
	EVENT_CODE_SCENE_LOADED SystemEventCode = 0x09

	// A scene file failed to load. Data: *SceneEvent
	EVENT_CODE_SCENE_LOAD_FAILED SystemEventCode = 0x0A

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

type KeyEvent struct {
	KeyCode KeyCode
}

type MouseEvent struct {
	Button Button
	X      float32
	Y      float32
	Scroll int8
}

type ResizeEvent struct {
	Width  uint32
	Height uint32
}

type SceneEvent struct {
	Name          string
	InstanceCount int
	Err           error
}

// Should return true if handled.
type FnOnEvent func(ctx EventContext, listener interface{}) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventSystemState struct {
	registered map[SystemEventCode][]*registeredEvent
}

var onceEvent sync.Once
var isInitialized bool = false
var eventState *eventSystemState = nil

func EventSystemInitialize() bool {
	onceEvent.Do(func() {
		eventState = &eventSystemState{
			registered: make(map[SystemEventCode][]*registeredEvent),
		}
	})
	isInitialized = true
	return true
}

// EventSystemShutdown drops every registration. Listeners own their own cleanup.
func EventSystemShutdown() error {
	if eventState != nil {
		eventState.registered = make(map[SystemEventCode][]*registeredEvent)
	}
	isInitialized = false
	return nil
}

// EventRegister listens for events sent with the provided code. A listener
// can only be registered once per code; duplicates return false.
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if !isInitialized || code >= MAX_MESSAGE_CODES {
		return false
	}
	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

// EventUnregister stops the listener from receiving events with the provided
// code. Returns false if no matching registration is found.
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	if !isInitialized {
		return false
	}
	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

// EventFire sends the event to listeners of its code, in registration order.
// If a handler returns true the event is considered handled and is not passed
// on to any more listeners.
func EventFire(ctx EventContext) bool {
	if !isInitialized {
		return false
	}
	for _, e := range eventState.registered[ctx.Type] {
		if e.callback(ctx, e.listener) {
			return true
		}
	}
	return false
}
