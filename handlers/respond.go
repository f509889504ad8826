package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {success, data, message}.

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{"success": true, "data": data, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondErrorData carries extra context alongside the failure, e.g. the
// legal next states after a rejected lifecycle transition.
func respondErrorData(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{"success": false, "data": data, "message": message})
}
