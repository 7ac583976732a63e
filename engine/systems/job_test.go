package systems

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/spaghettifunk/vitrum/engine/core"
	"github.com/spaghettifunk/vitrum/engine/renderer/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemValidation(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	assert.ErrorIs(t, err, core.ErrNoWorkers)
	_, err = NewJobSystem(1, -1)
	assert.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsCallbacks(t *testing.T) {
	js, err := NewJobSystem(2, 8)
	require.NoError(t, err)

	var completed, failed atomic.Int32
	boom := errors.New("boom")
	for i := 0; i < 10; i++ {
		fail := i%2 == 1
		err := js.Submit(metadata.JobTask{
			Name: "work",
			OnStart: func() (interface{}, error) {
				if fail {
					return nil, boom
				}
				return 42, nil
			},
			OnComplete: func(result interface{}) {
				if result.(int) == 42 {
					completed.Add(1)
				}
			},
			OnFailure: func(err error) {
				if errors.Is(err, boom) {
					failed.Add(1)
				}
			},
		})
		require.NoError(t, err)
	}

	// Shutdown drains the queue before returning.
	require.NoError(t, js.Shutdown())
	assert.Equal(t, int32(5), completed.Load())
	assert.Equal(t, int32(5), failed.Load())
	assert.NoError(t, js.Shutdown())
}

func TestJobSystemOptionalCallbacks(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	require.NoError(t, err)
	var started atomic.Bool
	require.NoError(t, js.Submit(metadata.JobTask{
		Name: "bare",
		OnStart: func() (interface{}, error) {
			started.Store(true)
			return nil, errors.New("ignored")
		},
	}))
	require.NoError(t, js.Shutdown())
	assert.True(t, started.Load())
}

func TestJobSystemRejectsWorkAfterShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	require.NoError(t, err)
	require.NoError(t, js.Shutdown())

	var ran atomic.Bool
	err = js.Submit(metadata.JobTask{
		Name: "late",
		OnStart: func() (interface{}, error) {
			ran.Store(true)
			return nil, nil
		},
	})
	assert.ErrorIs(t, err, ErrJobSystemClosed)
	assert.False(t, ran.Load())
}
