package dto

import (
	"github.com/google/uuid"
	"lagoon/internal/domains/review/model"
	"lagoon/shared"
	gDto "lagoon/shared/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"
)

type CreateReviewRequest struct {
	FacilityID string `json:"facility_id" validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Comment    string `json:"comment"     validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(affiliateID, customerID string) model.Review {
	return model.Review{
		ID:          uuid.NewString(),
		FacilityID:  c.FacilityID,
		AffiliateID: affiliateID,
		CustomerID:  customerID,
		Rating:      c.Rating,
		Comment:     c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type ReviewResponse struct {
	ID          string `json:"id"`
	FacilityID  string `json:"facility_id"`
	AffiliateID string `json:"affiliate_id"`
	CustomerID  string `json:"customer_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.FacilityID = mod.FacilityID
	r.AffiliateID = mod.AffiliateID
	r.CustomerID = mod.CustomerID
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.Metadata.FromModel(mod.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
