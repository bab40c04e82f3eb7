package httpresp

import "github.com/gin-gonic/gin"

type MessageResponse struct {
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Message(c *gin.Context, message string) {
	c.JSON(200, MessageResponse{
		Message: message,
	})
}
