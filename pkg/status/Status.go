package status

import (
	"strings"
	"time"

	"github.com/hmdsefi/gograph"
)

func New() *Status {
	s := &Status{
		LastUpdate: time.Now(),
	}

	s.CreateGraph()
	return s
}

func (status *Status) CreateGraph() {
	status.StateMachine = gograph.New[*State](gograph.Directed())

	unknown := gograph.NewVertex(&State{UNKNOWN, UNKNOWN})
	starting := gograph.NewVertex(&State{STARTING, UNKNOWN})
	running := gograph.NewVertex(&State{RUNNING, UNKNOWN})
	verified := gograph.NewVertex(&State{VERIFIED, UNKNOWN})

	status.StateMachine.AddEdge(unknown, starting)
	status.StateMachine.AddEdge(unknown, running)

	status.StateMachine.AddEdge(starting, running)
	status.StateMachine.AddEdge(starting, unknown)

	status.StateMachine.AddEdge(running, verified)
	status.StateMachine.AddEdge(running, running)
	status.StateMachine.AddEdge(running, unknown)

	status.StateMachine.AddEdge(verified, running)
	status.StateMachine.AddEdge(verified, verified)
	status.StateMachine.AddEdge(verified, unknown)

	status.State = unknown.Label()
}

// TransitionState moves to destination if the graph has that edge from the current state.
func (status *Status) TransitionState(destination string) bool {
	status.mu.Lock()
	defer status.mu.Unlock()

	if status.State.State == destination {
		status.LastUpdate = time.Now()
		return true
	}

	currentVertex := status.StateMachine.GetAllVerticesByID(status.State)

	if len(currentVertex) > 0 {
		edges := status.StateMachine.EdgesOf(currentVertex[0])

		for _, edge := range edges {
			if edge.Source().Label() == status.State && edge.Destination().Label().State == destination {
				oldState := strings.Clone(status.State.State)

				status.State = edge.Destination().Label()
				status.State.PreviousState = oldState
				status.LastUpdate = time.Now()

				return true
			}
		}
	}

	return false
}

// Reset drops back to unknown, which every state has an edge to.
func (status *Status) Reset() bool {
	return status.TransitionState(UNKNOWN)
}

func (status *Status) GetState() string {
	status.mu.RLock()
	defer status.mu.RUnlock()

	return status.State.State
}

func (status *Status) IfStateIs(state string) bool {
	return status.GetState() == state
}
