package models

import (
	"testing"

	"Backend-CrickZone/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGetSortOrder(t *testing.T) {
	t.Run("TestAscendingByDefault", func(t *testing.T) {
		params := models.DefaultPagination()
		assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, params.GetSortOrder())
	})

	t.Run("TestDescending", func(t *testing.T) {
		params := models.PaginationParams{SortBy: "scheduledDate", Order: "desc"}
		assert.Equal(t, bson.D{{Key: "scheduledDate", Value: -1}}, params.GetSortOrder())
	})

	t.Run("TestOrderCaseInsensitive", func(t *testing.T) {
		params := models.PaginationParams{SortBy: "enrolledAt", Order: "DESC"}
		assert.Equal(t, bson.D{{Key: "enrolledAt", Value: -1}}, params.GetSortOrder())
	})
}

func TestGetSkip(t *testing.T) {
	params := models.PaginationParams{Page: 3, Limit: 10}
	assert.Equal(t, int64(20), params.GetSkip())
}
