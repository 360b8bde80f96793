package docker

import (
	"testing"

	TDContainer "github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildme/dockerctl/pkg/platforms"
)

func TestBuildLaunchConfig(t *testing.T) {
	launch, err := buildLaunchConfig(&platforms.LaunchRequest{
		Name:         "flukebook_identification",
		Image:        "wildme/ibeis-deepsense",
		InternalPort: 5000,
		ExternalPort: 5003,
		Labels:       map[string]string{"dockerctl.service": "flukebook_identification"},
		Options: map[string]interface{}{
			"detach":         true,
			"restart_policy": "on-failure",
			"environment":    map[string]interface{}{"B": 2, "A": "1"},
			"command":        `python app.py --name "two words"`,
			"volumes":        []interface{}{"/data:/data:ro"},
			"labels":         map[string]string{"team": "ml", "dockerctl.service": "spoofed"},
			"runtime":        "nvidia",
			"privileged":     true,
			"shm_size":       "1g",
			"ipc_mode":       "host",
		},
	})

	require.NoError(t, err)

	assert.Equal(t, "wildme/ibeis-deepsense", launch.Config.Image)
	assert.Equal(t, "flukebook_identification", launch.Config.Hostname)
	assert.Equal(t, []string{"A=1", "B=2"}, launch.Config.Env)
	assert.Equal(t, []string{"python", "app.py", "--name", "two words"}, []string(launch.Config.Cmd))
	assert.Equal(t, "ml", launch.Config.Labels["team"])
	assert.Equal(t, "flukebook_identification", launch.Config.Labels["dockerctl.service"])
	assert.Contains(t, launch.Config.ExposedPorts, nat.Port("5000/tcp"))

	assert.Equal(t, TDContainer.RestartPolicyMode("on-failure"), launch.HostConfig.RestartPolicy.Name)
	assert.Equal(t, []string{"/data:/data:ro"}, launch.HostConfig.Binds)
	assert.Equal(t, "nvidia", launch.HostConfig.Runtime)
	assert.True(t, launch.HostConfig.Privileged)
	assert.Equal(t, int64(1<<30), launch.HostConfig.ShmSize)
	assert.Equal(t, []nat.PortBinding{{HostPort: "5003"}}, launch.HostConfig.PortBindings[nat.Port("5000/tcp")])

	assert.Equal(t, []string{"ipc_mode"}, launch.Ignored)
}

func TestBuildLaunchConfigWithoutPort(t *testing.T) {
	launch, err := buildLaunchConfig(&platforms.LaunchRequest{Name: "worker", Image: "wildme/worker"})

	require.NoError(t, err)
	assert.Empty(t, launch.Config.ExposedPorts)
	assert.Empty(t, launch.HostConfig.PortBindings)
}

func TestBuildLaunchConfigInvalid(t *testing.T) {
	_, err := buildLaunchConfig(&platforms.LaunchRequest{
		Name:    "worker",
		Image:   "wildme/worker",
		Options: map[string]interface{}{"privileged": []int{1}},
	})

	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestRestartPolicyMap(t *testing.T) {
	policy, err := restartPolicy(map[string]interface{}{"Name": "on-failure", "MaximumRetryCount": 3})

	require.NoError(t, err)
	assert.Equal(t, TDContainer.RestartPolicyMode("on-failure"), policy.Name)
	assert.Equal(t, 3, policy.MaximumRetryCount)
}

func TestBindsMap(t *testing.T) {
	result, err := binds(map[string]interface{}{
		"/models": map[string]interface{}{"bind": "/opt/models", "mode": "ro"},
		"/cache":  map[string]interface{}{"bind": "/root/.cache"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/cache:/root/.cache", "/models:/opt/models:ro"}, result)
}

func TestWordsList(t *testing.T) {
	result, err := words([]interface{}{"sh", "-c", "echo hi"})

	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", "echo hi"}, result)
}
