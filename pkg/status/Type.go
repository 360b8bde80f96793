package status

import (
	"sync"
	"time"

	"github.com/hmdsefi/gograph"
)

type Status struct {
	State        *State                `json:"state"`
	StateMachine gograph.Graph[*State] `json:"-"`
	LastUpdate   time.Time             `json:"last_update"`
	mu           sync.RWMutex          `json:"-"`
}

type State struct {
	State         string `json:"state"`
	PreviousState string `json:"previous_state"`
}

const UNKNOWN string = "unknown"
const STARTING string = "starting"
const RUNNING string = "running"
const VERIFIED string = "verified"
