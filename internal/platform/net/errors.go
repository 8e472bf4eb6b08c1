package net

import (
	"net/http"

	perr "biblia/internal/platform/errors"
)

// HTTPStatus maps a project error to http status
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// DisplayMessage is the short text shown to end users for err
// status carriers keep their status in the message so the user sees what the provider said
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := perr.WireFrom(err).Message
	if st, ok := perr.StatusOf(err); ok {
		return msg + " (" + http.StatusText(st) + ")"
	}
	return msg
}
