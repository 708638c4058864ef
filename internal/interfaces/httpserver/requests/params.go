package requests

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseUintParam parses a numeric path parameter.
func ParseUintParam(reqCtx *gin.Context, name string) (uint, bool) {
	raw := reqCtx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || val == 0 {
		return 0, false
	}
	return uint(val), true
}
