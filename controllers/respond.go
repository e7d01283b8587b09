package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeshift/apperror"
)

// respondError maps each failure category to its status code. Anything that
// is not a tagged application error is a programming or storage fault and
// surfaces as a 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrUpstream):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
