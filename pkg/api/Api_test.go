package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildme/dockerctl/pkg/configuration"
	"github.com/wildme/dockerctl/pkg/httpcontract"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/platforms"
	mock_platforms "github.com/wildme/dockerctl/pkg/platforms/mock"
	"github.com/wildme/dockerctl/pkg/registry"
	"github.com/wildme/dockerctl/pkg/static"
	"github.com/wildme/dockerctl/pkg/version"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newApi(t *testing.T) (*Api, *mock_platforms.MockRuntime) {
	ctrl := gomock.NewController(t)

	runtime := mock_platforms.NewMockRuntime(ctrl)
	images := mock_platforms.NewMockImageManager(ctrl)

	o := orchestrator.New(runtime, images, nil, nil, nil)
	o.Interval = time.Millisecond

	require.NoError(t, o.Register(registry.ServiceConfig{Name: "svc", Image: "wildme/x"}, false))

	return NewApi(o, configuration.NewConfig(), nil), runtime
}

func running() *platforms.Container {
	return &platforms.Container{
		Name:   "svc",
		Status: static.STATUS_RUNNING,
		Ports: []platforms.PortMapping{
			{Port: "6000/tcp", Bindings: []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "54321"}}},
		},
	}
}

func serve(api *Api, method string, target string) (*httptest.ResponseRecorder, httpcontract.Response) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, target, nil)

	api.Router().ServeHTTP(recorder, request)

	var response httpcontract.Response
	_ = jsoniter.Unmarshal(recorder.Body.Bytes(), &response)

	return recorder, response
}

func TestHealth(t *testing.T) {
	api, _ := newApi(t)

	recorder, response := serve(api, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, response.Success)
}

func TestListServices(t *testing.T) {
	api, _ := newApi(t)

	recorder, response := serve(api, http.MethodGet, "/api/v1/services")

	require.Equal(t, http.StatusOK, recorder.Code)

	var names []string
	require.NoError(t, response.Decode(&names))
	assert.Equal(t, []string{"svc"}, names)
}

func TestStatus(t *testing.T) {
	api, runtime := newApi(t)

	runtime.EXPECT().List(gomock.Any()).Return([]*platforms.Container{running()}, nil)

	recorder, response := serve(api, http.MethodGet, "/api/v1/services/svc/status")

	require.Equal(t, http.StatusOK, recorder.Code)

	var status ServiceStatus
	require.NoError(t, response.Decode(&status))
	assert.Equal(t, static.STATUS_RUNNING, status.Status)
	assert.True(t, status.Found)
}

func TestStatusNotRegistered(t *testing.T) {
	api, _ := newApi(t)

	recorder, response := serve(api, http.MethodGet, "/api/v1/services/nope/status")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.True(t, response.Error)
}

func TestURLsBadClone(t *testing.T) {
	api, _ := newApi(t)

	recorder, _ := serve(api, http.MethodGet, "/api/v1/services/svc/urls?clone=-1")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestURLsClone(t *testing.T) {
	api, runtime := newApi(t)

	runtime.EXPECT().List(gomock.Any()).Return([]*platforms.Container{running()}, nil)

	recorder, response := serve(api, http.MethodGet, "/api/v1/services/svc/urls?clone=3")

	require.Equal(t, http.StatusOK, recorder.Code)

	var urls ServiceURLs
	require.NoError(t, response.Decode(&urls))
	assert.Equal(t, "svc_clone_3", urls.Name)
	assert.False(t, urls.Running)
}

func TestEnsureWithoutVerify(t *testing.T) {
	api, runtime := newApi(t)

	runtime.EXPECT().List(gomock.Any()).Return([]*platforms.Container{running()}, nil)
	runtime.EXPECT().Inspect(gomock.Any(), "svc").Return(running(), nil)

	recorder, response := serve(api, http.MethodPost, "/api/v1/services/svc/ensure?verify=false")

	require.Equal(t, http.StatusOK, recorder.Code)

	var urls ServiceURLs
	require.NoError(t, response.Decode(&urls))
	assert.Equal(t, []string{"127.0.0.1:54321"}, urls.URLs)
}

func TestContainersAndImages(t *testing.T) {
	api, runtime := newApi(t)

	runtime.EXPECT().List(gomock.Any()).Return([]*platforms.Container{running()}, nil)
	runtime.EXPECT().ListImages(gomock.Any()).Return([]string{"wildme/x:latest"}, nil)

	recorder, response := serve(api, http.MethodGet, "/api/v1/containers")
	require.Equal(t, http.StatusOK, recorder.Code)

	var buckets map[string][]string
	require.NoError(t, response.Decode(&buckets))
	assert.Equal(t, []string{"svc"}, buckets[static.STATUS_RUNNING])

	recorder, response = serve(api, http.MethodGet, "/api/v1/images")
	require.Equal(t, http.StatusOK, recorder.Code)

	var tags []string
	require.NoError(t, response.Decode(&tags))
	assert.Equal(t, []string{"wildme/x:latest"}, tags)
}

func TestMetrics(t *testing.T) {
	api, _ := newApi(t)

	recorder := httptest.NewRecorder()
	api.Router().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}

func TestVersion(t *testing.T) {
	api, _ := newApi(t)

	recorder, response := serve(api, http.MethodGet, "/api/v1/version")

	require.Equal(t, http.StatusOK, recorder.Code)

	var v version.Version
	require.NoError(t, response.Decode(&v))
	assert.Equal(t, "dev", v.Version)
}
