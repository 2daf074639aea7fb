package util

import (
	"net/http"
	"strconv"
	"time"
)

var MalformedIdHTTPErr = HTTPError{
	Message: "id malformed",
	Status:  http.StatusBadRequest,
}

func ParseId(val string) (int64, *HTTPError) {
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, &MalformedIdHTTPErr
	}
	return id, nil
}

func ParseTime(val string) (time.Time, error) {
	return time.Parse(time.RFC3339, val)
}
