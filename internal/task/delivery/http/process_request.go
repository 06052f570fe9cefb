package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createReq{}, err
	}
	return req, nil
}

func (h *handler) processDispatchReq(c *gin.Context) (dispatchReq, error) {
	var req dispatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return dispatchReq{}, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return listReq{}, err
	}
	return req, nil
}
