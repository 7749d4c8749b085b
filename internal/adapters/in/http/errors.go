package http

import (
	"errors"
	"net/http"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
)

// statusOf maps an application error onto an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, item.ErrInsufficientStock),
		errors.Is(err, errs.ErrIllegalState),
		errors.Is(err, member.ErrMemberAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
