package errors

import (
	stderrs "errors"
	"net/http"
)

// StatusCarrier is implemented by errors that already know their HTTP status,
// typically a non-2xx answer from an upstream service
type StatusCarrier interface {
	HTTPStatus() int
}

// StatusOf returns the status of the first StatusCarrier in the chain
func StatusOf(err error) (int, bool) {
	var sc StatusCarrier
	if err == nil || !stderrs.As(err, &sc) {
		return 0, false
	}
	st := sc.HTTPStatus()
	if st < 100 || st > 599 {
		return 0, false
	}
	return st, true
}

// RetryableStatus reports whether an upstream status is worth a later retry
func RetryableStatus(st int) bool {
	switch st {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// CodeForStatus classifies an upstream HTTP status into an ErrorCode
func CodeForStatus(st int) ErrorCode {
	switch {
	case st == http.StatusNotFound:
		return ErrorCodeNotFound
	case st == http.StatusTooManyRequests:
		return ErrorCodeTooManyRequests
	case st == http.StatusRequestTimeout || st == http.StatusGatewayTimeout:
		return ErrorCodeTimeout
	case st == http.StatusServiceUnavailable:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeUpstream
	}
}
