package static

import "time"

const PROJECT = "dockerctl"

// Default Log Level
const DEFAULT_LOG_LEVEL = "info"

// Config Constants
const (
	CONFIG_NAME       = "dockerctl"
	CONFIG_TYPE       = "yaml"
	ENV_PREFIX        = "DOCKERCTL"
	DEFAULT_LISTEN    = "127.0.0.1:8585"
	DEFAULT_DOT_ENV   = ".env"
	DEFAULT_PORT_BASE = 5000
)

// Platform Constants
const (
	PLATFORM_DOCKER = "docker"
)

// Registry Constants
var DEFAULT_IMAGE_PREFIXES = []string{
	"wildme",
}

const CLONE_SEPARATOR = "_clone_"

// Health check budget
const (
	DEFAULT_CHECK_RETRIES  = 20
	DEFAULT_CHECK_INTERVAL = 15 * time.Second
	DEFAULT_PROBE_TIMEOUT  = 5 * time.Second
)

// Addresses probed when deciding whether a host port is taken.
// 0.0.0.0 covers the case where we run inside a container network namespace.
var PROBE_ADDRESSES = []string{
	"localhost",
	"127.0.0.1",
	"0.0.0.0",
}

const PORT_PROBE_TIMEOUT = 250 * time.Millisecond

// Run args
const (
	RUN_ARG_DETACH         = "detach"
	RUN_ARG_RESTART_POLICY = "restart_policy"
	RUN_ARG_PRIVATE_PREFIX = "_"

	LEGACY_INTERNAL_PORT  = "_internal_port"
	LEGACY_SUGGESTED_PORT = "_external_suggested_port"

	RESTART_ON_FAILURE = "on-failure"
)

// Container statuses reported by the engine
const (
	STATUS_RUNNING = "running"
	STATUS_EXITED  = "exited"
	STATUS_CREATED = "created"
)

// Labels put on managed containers
const (
	LABEL_SERVICE = "dockerctl.service"
	LABEL_CLONE   = "dockerctl.clone"
	LABEL_SESSION = "dockerctl.session"
)
