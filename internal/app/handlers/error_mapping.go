package handlers

import (
	"errors"
	"net/http"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/models"

	"github.com/gin-gonic/gin"
)

var errorStatusCodes = map[string]int{
	consts.ErrorInvalidRequest.Code:        http.StatusBadRequest,
	consts.ErrorInvalidAmount.Code:         http.StatusBadRequest,
	consts.ErrorFuturePaymentDate.Code:     http.StatusBadRequest,
	consts.ErrorUpdateFieldNotAllowed.Code: http.StatusBadRequest,
	consts.ErrorAccountInvariant.Code:      http.StatusBadRequest,
	consts.ErrorAccountNotFound.Code:       http.StatusNotFound,
	consts.ErrorCustomerNotFound.Code:      http.StatusNotFound,
	consts.ErrorChatNotFound.Code:          http.StatusNotFound,
	consts.ErrorDuplicateTransaction.Code:  http.StatusConflict,
	consts.ErrorConcurrencyConflict.Code:   http.StatusInternalServerError,
	consts.ErrorCustomerIdExhausted.Code:   http.StatusInternalServerError,
	consts.ErrorStorage.Code:               http.StatusInternalServerError,
}

// respondError translates a service error into the HTTP response body.
// Unknown errors come out as a plain 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		status, ok := errorStatusCodes[customErr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"errorCode": customErr.Code,
			"error":     customErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"errorCode": consts.ErrorStorage.Code,
		"error":     consts.ErrorStorage.Message,
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errorCode": consts.ErrorInvalidRequest.Code,
		"error":     err.Error(),
	})
}
