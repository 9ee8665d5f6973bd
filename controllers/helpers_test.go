// controllers/helpers_test.go
package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestUserIDFromContext(t *testing.T) {
	id := uuid.New()

	c := testContext(t)
	c.Set("userId", id.String())
	assert.Equal(t, id, userIDFromContext(c))
}

func TestUserIDFromContext_BadClaims(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		c := testContext(t)
		assert.Equal(t, uuid.Nil, userIDFromContext(c))
	})

	t.Run("non-string claim", func(t *testing.T) {
		// A forged token can carry a numeric sub; it must not panic.
		c := testContext(t)
		c.Set("userId", float64(42))
		assert.Equal(t, uuid.Nil, userIDFromContext(c))
	})

	t.Run("malformed uuid", func(t *testing.T) {
		c := testContext(t)
		c.Set("userId", "not-a-uuid")
		assert.Equal(t, uuid.Nil, userIDFromContext(c))
	})
}
