package dto

import (
	"github.com/google/uuid"
	"lagoon/internal/domains/favorite/model"
	"lagoon/shared"
	gDto "lagoon/shared/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"
)

type CreateFavoriteRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
}

func (c *CreateFavoriteRequest) ToModel(user string) model.Favorite {
	return model.Favorite{
		ID:         uuid.NewString(),
		CustomerID: user,
		FacilityID: c.FacilityID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type FavoriteResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	FacilityID string `json:"facility_id"`
	gDto.Metadata
}

func (r *FavoriteResponse) FromModel(mod model.Favorite) {
	r.ID = mod.ID
	r.CustomerID = mod.CustomerID
	r.FacilityID = mod.FacilityID
	r.Metadata.FromModel(mod.Metadata)
}

type GetFavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetFavoritesResponse) FromModels(models []model.Favorite, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Favorites = make([]FavoriteResponse, len(models))
	for i, mod := range models {
		r.Favorites[i].FromModel(mod)
	}
}
