package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Success bool `json:"success"`
	Total   int  `json:"total"`
	Data    []T  `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(201, gin.H{"success": true, "message": message, "data": data})
}

func Message(c *gin.Context, message string, data any) {
	c.JSON(200, gin.H{"success": true, "message": message, "data": data})
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Success: true,
		Total:   len(data),
		Data:    data,
	})
}
