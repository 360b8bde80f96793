package endpoints

import (
	"testing"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/wildme/dockerctl/pkg/platforms"
)

func fixture() *platforms.Container {
	return &platforms.Container{
		Name:   "svc",
		Status: "running",
		Networks: []platforms.Network{
			{Name: "bridge", IPAddress: "172.17.0.2"},
			{Name: "detached", IPAddress: ""},
			{Name: "wbia", IPAddress: "10.10.0.5"},
		},
		Ports: []platforms.PortMapping{
			{Port: "5000/tcp", Bindings: nil},
			{Port: "6000/tcp", Bindings: []nat.PortBinding{
				{HostIP: "127.0.0.1", HostPort: "54321"},
				{HostIP: "::1", HostPort: "54322"},
			}},
			{Port: "7000/tcp", Bindings: []nat.PortBinding{
				{HostIP: "", HostPort: "50000"},
				{HostIP: "0.0.0.0", HostPort: "50001"},
			}},
		},
	}
}

func TestResolveOrder(t *testing.T) {
	result := Resolve(fixture(), 0)

	assert.Equal(t, []Endpoint{
		{Host: "172.17.0.2"},
		{Host: "10.10.0.5"},
		{Host: "127.0.0.1", Port: 54321},
		{Host: "0.0.0.0", Port: 50001},
	}, result)
}

func TestResolveIsStable(t *testing.T) {
	first := Strings(Resolve(fixture(), 6000))

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Strings(Resolve(fixture(), 6000)))
	}
}

func TestResolveHint(t *testing.T) {
	result := Strings(Resolve(fixture(), 6000))

	assert.Equal(t, []string{
		"172.17.0.2:6000",
		"10.10.0.5:6000",
		"127.0.0.1:54321",
		"0.0.0.0:50001",
	}, result)
}

func TestResolveNoBindings(t *testing.T) {
	container := &platforms.Container{
		Networks: []platforms.Network{{Name: "bridge", IPAddress: "172.17.0.9"}},
	}

	assert.Equal(t, []string{"172.17.0.9"}, Strings(Resolve(container, 0)))
	assert.Equal(t, []string{"172.17.0.9:8080"}, Strings(Resolve(container, 8080)))
}

func TestResolveNil(t *testing.T) {
	assert.Empty(t, Resolve(nil, 6000))
}

func TestResolveKeepsDuplicates(t *testing.T) {
	container := &platforms.Container{
		Networks: []platforms.Network{
			{Name: "a", IPAddress: "10.0.0.1"},
			{Name: "b", IPAddress: "10.0.0.1"},
		},
	}

	assert.Len(t, Resolve(container, 0), 2)
}

func TestString(t *testing.T) {
	assert.Equal(t, "10.0.0.1", Endpoint{Host: "10.0.0.1"}.String())
	assert.Equal(t, "10.0.0.1:80", Endpoint{Host: "10.0.0.1", Port: 80}.String())
	assert.Equal(t, "[::1]:80", Endpoint{Host: "::1", Port: 80}.String())
}

func TestPorts(t *testing.T) {
	assert.Equal(t, []int{54321, 50001}, Ports(Resolve(fixture(), 0)))
}
