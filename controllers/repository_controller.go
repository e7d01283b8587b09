package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codeshift/middlewares"
	"codeshift/models"
	"codeshift/services"
	"codeshift/structs"
)

// RepositoryController serves the linked-repository endpoints. Analysis
// itself happens in background jobs; these handlers only manage documents.
type RepositoryController struct {
	repos *services.RepoService
	users services.UserStore
}

func NewRepositoryController(repos *services.RepoService, users services.UserStore) *RepositoryController {
	return &RepositoryController{repos: repos, users: users}
}

// List returns the user's linked repositories, optionally filtered by the
// status query parameter.
func (rc *RepositoryController) List(ctx *gin.Context) {
	userID, ok := rc.userObjectID(ctx)
	if !ok {
		return
	}

	repos, err := rc.repos.ListLinked(ctx.Request.Context(), userID, ctx.Query("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"repositories": repos})
}

// ListGitHub proxies the user's repository list from GitHub.
func (rc *RepositoryController) ListGitHub(ctx *gin.Context) {
	user, ok := rc.currentUser(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.Query("page"))
	perPage, _ := strconv.Atoi(ctx.Query("per_page"))

	repos, err := rc.repos.ListGitHub(ctx.Request.Context(), user, page, perPage)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"repositories": repos})
}

// Link connects a GitHub repository to the user and queues it for analysis.
func (rc *RepositoryController) Link(ctx *gin.Context) {
	user, ok := rc.currentUser(ctx)
	if !ok {
		return
	}

	var request structs.LinkRepositoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	repo, err := rc.repos.Link(ctx.Request.Context(), user, request.GitHubURL, request.Branch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, repo)
}

// Get returns one linked repository.
func (rc *RepositoryController) Get(ctx *gin.Context) {
	userID, ok := rc.userObjectID(ctx)
	if !ok {
		return
	}

	repo, err := rc.repos.Get(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, repo)
}

// Delete unlinks a repository.
func (rc *RepositoryController) Delete(ctx *gin.Context) {
	userID, ok := rc.userObjectID(ctx)
	if !ok {
		return
	}

	if err := rc.repos.Unlink(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Repository unlinked"})
}

func (rc *RepositoryController) userObjectID(ctx *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(ctx.GetString(middlewares.ContextUserID))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	return oid, true
}

func (rc *RepositoryController) currentUser(ctx *gin.Context) (*models.User, bool) {
	user, err := rc.users.FindByID(ctx.Request.Context(), ctx.GetString(middlewares.ContextUserID))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return user, true
}
