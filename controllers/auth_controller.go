package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeshift/middlewares"
	"codeshift/services"
	"codeshift/structs"
)

// AuthController serves the GitHub OAuth login flow and session endpoints.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// GitHubLogin starts the OAuth flow and returns the provider authorization
// URL. The redirect_uri in the body is optional.
func (ac *AuthController) GitHubLogin(ctx *gin.Context) {
	var request structs.GitHubOAuthRequest
	// Body is optional; an empty or absent body means the default redirect.
	_ = ctx.ShouldBindJSON(&request)

	authURL, err := ac.auth.Initiate(ctx.Request.Context(), request.RedirectURI)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, structs.GitHubOAuthResponse{AuthURL: authURL})
}

// GitHubCallback completes the OAuth flow and returns a session token plus
// the public user projection.
func (ac *AuthController) GitHubCallback(ctx *gin.Context) {
	var request structs.GitHubCallbackRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	resp, err := ac.auth.Callback(ctx.Request.Context(), request.Code, request.State)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's full projection.
func (ac *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString(middlewares.ContextUserID)
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	info, err := ac.auth.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, info)
}

// Logout acknowledges a client-side logout. The session token stays valid
// until its natural expiry.
func (ac *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
