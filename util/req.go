package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var DbHTTPErr = HTTPError{
	Message: "database error",
	Status:  http.StatusInternalServerError,
}

type HandlerOpts struct{}

type WrappedHandler func(c *gin.Context) (interface{}, *HTTPError)

// HandlerWrapper standardizes route responses: data goes out under "data" on
// success, HTTPErrors become the response status and message.
func HandlerWrapper(handler WrappedHandler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			c.JSON(httpErr.Status, gin.H{
				"success": false,
				"message": httpErr.Message,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	}
}

func BuildDbHTTPErr(err error) *HTTPError {
	logrus.WithError(err).Error("database error occurred")
	return &DbHTTPErr
}
