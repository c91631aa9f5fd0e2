package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/MGTheTrain/rsa-keyring/internal/domain/cryptoerr"
	"github.com/MGTheTrain/rsa-keyring/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// caller input classes answered with 400
var badRequestErrors = []error{
	cryptoerr.ErrInvalidFormat,
	cryptoerr.ErrInvalidHexInput,
	cryptoerr.ErrNegativeValueUnsupported,
	cryptoerr.ErrUnsupportedValueType,
	cryptoerr.ErrUninitializedKey,
	cryptoerr.ErrInvalidKeySize,
}

// statusFor maps an error class to an HTTP status code
func statusFor(err error) int {
	if errors.Is(err, keys.ErrKeyNotFound) {
		return http.StatusNotFound
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), ErrorResponse{Message: err.Error()})
}
