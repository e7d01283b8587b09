package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codeshift/models"
	"codeshift/utils"
)

type fakeUserLoader struct {
	user *models.User
}

func (f *fakeUserLoader) FindByID(ctx context.Context, id string) (*models.User, error) {
	return f.user, nil
}

func newPlanTestRouter(loader *fakeUserLoader, minPlan string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gated", AuthMiddleware(), RequirePlan(loader, minPlan), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequirePlan(t *testing.T) {
	utils.SetJWTConfig("test-secret-at-least-16-chars", time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), Username: "octocat", Plan: models.PlanFree}
	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Username, "octo@example.com")
	require.NoError(t, err)

	loader := &fakeUserLoader{user: user}

	do := func(minPlan string) int {
		router := newPlanTestRouter(loader, minPlan)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do(models.PlanFree))
	assert.Equal(t, http.StatusForbidden, do(models.PlanPro))

	user.Plan = models.PlanEnterprise
	assert.Equal(t, http.StatusOK, do(models.PlanPro))
	assert.Equal(t, http.StatusOK, do(models.PlanEnterprise))
}
