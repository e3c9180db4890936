package dto_test

import (
	"testing"

	"lagoon/internal/domains/favorite/model"
	"lagoon/internal/domains/favorite/model/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateFavoriteRequest_ToModel(t *testing.T) {
	req := dto.CreateFavoriteRequest{
		FacilityID: "facility-1",
	}

	customerID := "customer-1"
	mod := req.ToModel(customerID)

	assert.NotEmpty(t, mod.ID, "expected ID to be generated")
	assert.Equal(t, customerID, mod.CustomerID)
	assert.Equal(t, req.FacilityID, mod.FacilityID)
	assert.Equal(t, customerID, mod.CreatedBy)
	assert.Equal(t, customerID, mod.ModifiedBy)
	assert.False(t, mod.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, mod.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestFavoriteResponse_FromModel(t *testing.T) {
	mod := model.Favorite{
		ID:         "fav-1",
		CustomerID: "customer-1",
		FacilityID: "facility-1",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "customer-1",
			ModifiedBy: "customer-1",
		},
	}

	var res dto.FavoriteResponse
	res.FromModel(mod)

	assert.Equal(t, mod.ID, res.ID)
	assert.Equal(t, mod.CustomerID, res.CustomerID)
	assert.Equal(t, mod.FacilityID, res.FacilityID)
}

func TestGetFavoritesResponse_FromModels(t *testing.T) {
	models := []model.Favorite{
		{ID: "fav-1", CustomerID: "customer-1", FacilityID: "facility-1"},
		{ID: "fav-2", CustomerID: "customer-1", FacilityID: "facility-2"},
	}

	var res dto.GetFavoritesResponse
	res.FromModels(models, 5, 2)

	assert.Len(t, res.Favorites, 2)
	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, "fav-1", res.Favorites[0].ID)
	assert.Equal(t, "fav-2", res.Favorites[1].ID)
}
