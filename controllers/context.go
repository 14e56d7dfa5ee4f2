package controllers

import "github.com/gin-gonic/gin"

func userIDFromCtx(c *gin.Context) (uint, bool) {
	id := c.GetUint("userID")
	return id, id != 0
}
