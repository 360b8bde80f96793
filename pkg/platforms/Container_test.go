package platforms

import (
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
)

func TestBuckets(t *testing.T) {
	containers := []*Container{
		{Name: "b", Status: "running"},
		{Name: "a", Status: "running"},
		{Name: "a", Status: "running"},
		{Name: "c", Status: "exited"},
		nil,
	}

	buckets := Buckets(containers)

	assert.Equal(t, []string{"a", "b"}, buckets["running"])
	assert.Equal(t, []string{"c"}, buckets["exited"])
	assert.Len(t, buckets, 2)
}

func TestIsRunning(t *testing.T) {
	var missing *Container

	assert.False(t, missing.IsRunning())
	assert.True(t, (&Container{Status: "running"}).IsRunning())
	assert.False(t, (&Container{Status: "exited"}).IsRunning())
}

func TestToJSON(t *testing.T) {
	container := &Container{
		Name:   "svc",
		Status: "running",
		Ports: []PortMapping{
			{Port: "6000/tcp", Bindings: []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "54321"}}},
		},
	}

	data, err := container.ToJSON()

	assert.NoError(t, err)
	assert.Contains(t, string(data), `"name":"svc"`)
	assert.Contains(t, string(data), `"port":"6000/tcp"`)
	assert.Contains(t, string(data), `"HostPort":"54321"`)
}
