package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeshift/models"
)

// userLoader is the slice of the user repository the plan gate needs.
type userLoader interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// RequirePlan gates a route group behind a minimum plan tier
// (free < pro < enterprise). Must run after AuthMiddleware.
func RequirePlan(users userLoader, minPlan string) gin.HandlerFunc {
	floor := models.PlanRank(minPlan)
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if models.PlanRank(user.Plan) < floor {
			c.JSON(http.StatusForbidden, gin.H{"error": "This feature requires the " + minPlan + " plan"})
			c.Abort()
			return
		}
		c.Next()
	}
}
