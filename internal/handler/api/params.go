package api

import (
	"strconv"

	"tour-booking-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

func pageParams(c *gin.Context) shared.PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return shared.PageParams{Page: page, Limit: limit}.Normalize()
}
