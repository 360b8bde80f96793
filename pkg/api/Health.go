package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wildme/dockerctl/pkg/httpcontract"
	"github.com/wildme/dockerctl/pkg/version"
)

func (api *Api) Health(c *gin.Context) {
	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "dockerctl is healthy", nil, nil))
}

func (api *Api) Version(c *gin.Context) {
	c.JSON(http.StatusOK, httpcontract.NewResponse(http.StatusOK, "", nil, version.New()))
}
