package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildme/dockerctl/pkg/httpcontract"
)

func (api *Api) Images(c *gin.Context) {
	tags, err := api.Orchestrator.ImageTags(c.Request.Context())

	if err != nil {
		api.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "", nil, tags))
}

func (api *Api) Containers(c *gin.Context) {
	buckets, err := api.Orchestrator.Containers(c.Request.Context())

	if err != nil {
		api.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "", nil, buckets))
}
