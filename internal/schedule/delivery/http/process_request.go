package http

import (
	"github.com/gin-gonic/gin"
)

// processLookupReq binds the lookup JSON body. Field rules are applied by the use case.
func (h *handler) processLookupReq(c *gin.Context) (lookupReq, error) {
	var req lookupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLookupForm binds the lookup form of the page.
func (h *handler) processLookupForm(c *gin.Context) (lookupReq, error) {
	var req lookupReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDayReq binds the day query parameters.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportGoogleReq binds the Google export JSON body.
func (h *handler) processExportGoogleReq(c *gin.Context) (exportGoogleReq, error) {
	var req exportGoogleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
