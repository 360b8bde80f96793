package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wildme/dockerctl/pkg/httpcontract"
	"github.com/wildme/dockerctl/pkg/orchestrator"
	"github.com/wildme/dockerctl/pkg/registry"
	"go.uber.org/zap"
)

func (api *Api) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "", nil, api.Orchestrator.Registry.Names()))
}

func (api *Api) Status(c *gin.Context) {
	name := c.Param("name")

	clone, err := cloneParam(c)

	if err != nil {
		api.fail(c, err)
		return
	}

	if _, err = api.Orchestrator.Registry.Get(name); err != nil {
		api.fail(c, err)
		return
	}

	status, found, err := api.Orchestrator.Status(c.Request.Context(), name, clone)

	if err != nil {
		api.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "", nil, ServiceStatus{
		Name:   registry.NameClone(name, clone),
		Clone:  clone,
		Status: status,
		Found:  found,
		State:  api.Orchestrator.State(name, clone),
	}))
}

func (api *Api) URLs(c *gin.Context) {
	name := c.Param("name")

	clone, err := cloneParam(c)

	if err != nil {
		api.fail(c, err)
		return
	}

	urls, running, err := api.Orchestrator.URLs(c.Request.Context(), name, clone)

	if err != nil {
		api.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "", nil, ServiceURLs{
		Name:    registry.NameClone(name, clone),
		Clone:   clone,
		Running: running,
		URLs:    urls,
	}))
}

// Ensure godoc
//
//	@Summary	Start the service if needed and return its endpoints
//	@Param		clone	query	int		false	"clone index"
//	@Param		verify	query	bool	false	"run the health check (default true)"
//	@Param		new		query	bool	false	"refuse to adopt an existing container"
//	@Router		/services/{name}/ensure [post]
func (api *Api) Ensure(c *gin.Context) {
	name := c.Param("name")

	clone, err := cloneParam(c)

	if err != nil {
		api.fail(c, err)
		return
	}

	verify, err := strconv.ParseBool(c.DefaultQuery("verify", "true"))

	if err != nil {
		api.fail(c, fmt.Errorf("%w: verify=%q", ErrInvalidQuery, c.Query("verify")))
		return
	}

	ensureNew, err := strconv.ParseBool(c.DefaultQuery("new", "false"))

	if err != nil {
		api.fail(c, fmt.Errorf("%w: new=%q", ErrInvalidQuery, c.Query("new")))
		return
	}

	urls, err := api.Orchestrator.Ensure(c.Request.Context(), name, orchestrator.EnsureOptions{
		Clone:      clone,
		SkipVerify: !verify,
		EnsureNew:  ensureNew,
	})

	if err != nil {
		api.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "service is up", nil, ServiceURLs{
		Name:    registry.NameClone(name, clone),
		Clone:   clone,
		Running: true,
		URLs:    urls,
	}))
}

func (api *Api) fail(c *gin.Context, err error) {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		api.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}

	c.JSON(status, httpcontract.NewResponse(status, "", err, nil))
}

func cloneParam(c *gin.Context) (*uint64, error) {
	raw, ok := c.GetQuery("clone")

	if !ok || raw == "" {
		return nil, nil
	}

	clone, err := strconv.ParseUint(raw, 10, 64)

	if err != nil {
		return nil, fmt.Errorf("%w: clone=%q", ErrInvalidQuery, raw)
	}

	return registry.CloneIndex(clone), nil
}
