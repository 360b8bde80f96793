package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	s := New()

	assert.Equal(t, UNKNOWN, s.GetState())
}

func TestStartedPath(t *testing.T) {
	s := New()

	assert.True(t, s.TransitionState(STARTING))
	assert.True(t, s.TransitionState(RUNNING))
	assert.True(t, s.TransitionState(VERIFIED))
	assert.Equal(t, VERIFIED, s.GetState())
	assert.Equal(t, RUNNING, s.State.PreviousState)
}

func TestAlreadyRunningPath(t *testing.T) {
	s := New()

	assert.True(t, s.TransitionState(RUNNING))
	assert.True(t, s.IfStateIs(RUNNING))
}

func TestInvalidTransitions(t *testing.T) {
	s := New()

	assert.False(t, s.TransitionState(VERIFIED))
	assert.Equal(t, UNKNOWN, s.GetState())

	assert.True(t, s.TransitionState(STARTING))
	assert.False(t, s.TransitionState(VERIFIED))
	assert.Equal(t, STARTING, s.GetState())

	assert.False(t, s.TransitionState("exploded"))
}

func TestSameStateIsAccepted(t *testing.T) {
	s := New()

	assert.True(t, s.TransitionState(RUNNING))
	assert.True(t, s.TransitionState(RUNNING))
	assert.Equal(t, RUNNING, s.GetState())
}

func TestReset(t *testing.T) {
	for _, path := range [][]string{
		{STARTING},
		{RUNNING},
		{RUNNING, VERIFIED},
		{},
	} {
		s := New()

		for _, state := range path {
			assert.True(t, s.TransitionState(state))
		}

		assert.True(t, s.Reset())
		assert.Equal(t, UNKNOWN, s.GetState())
	}
}
