package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lagoon/config"
	"lagoon/infras/otel/mocks"
	bookingMocks "lagoon/internal/domains/booking/mocks"
	facilityMocks "lagoon/internal/domains/facility/mocks"
	facilityModel "lagoon/internal/domains/facility/model"
	reviewMocks "lagoon/internal/domains/review/mocks"
	"lagoon/internal/domains/review/model"
	"lagoon/internal/domains/review/model/dto"
	"lagoon/internal/domains/review/service"
	cacheMocks "lagoon/shared/cache/mocks"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
)

type reviewMockSet struct {
	repo         *reviewMocks.MockReview
	bookingRepo  *bookingMocks.MockBooking
	facilityRepo *facilityMocks.MockFacility
	cache        *cacheMocks.MockRedisCache
}

func newReviewService(ctrl *gomock.Controller) (service.Review, reviewMockSet) {
	m := reviewMockSet{
		repo:         reviewMocks.NewMockReview(ctrl),
		bookingRepo:  bookingMocks.NewMockBooking(ctrl),
		facilityRepo: facilityMocks.NewMockFacility(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.bookingRepo, m.facilityRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func customerContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCustomer)
}

func TestReviewService_Create(t *testing.T) {
	req := dto.CreateReviewRequest{
		FacilityID: "facility-1",
		Rating:     5,
		Comment:    "Great stay",
	}

	facility := facilityModel.Facility{
		ID:          "facility-1",
		AffiliateID: "affiliate-1",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m reviewMockSet)
		wantErr   bool
	}{
		{
			name: "successful review",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.facilityRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(facility, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:      "anonymous caller is forbidden",
			ctx:       context.Background(),
			setupMock: func(m reviewMockSet) {},
			wantErr:   true,
		},
		{
			name: "affiliates cannot review",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "affiliate-1"),
				constant.ContextKeyUserRole, constant.RoleAffiliate,
			),
			setupMock: func(m reviewMockSet) {},
			wantErr:   true,
		},
		{
			name: "facility not found",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.facilityRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(facilityModel.Facility{}, nil)
			},
			wantErr: true,
		},
		{
			name: "no completed stay",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.facilityRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(facility, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "facility already reviewed",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.facilityRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(facility, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.facilityRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(facility, nil)

				m.bookingRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newReviewService(ctrl)
			tt.setupMock(m)

			err := svc.Create(tt.ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReviewService(ctrl)

	reviews := []model.Review{
		{ID: "review-1", FacilityID: "facility-1", CustomerID: "customer-1", Rating: 5},
		{ID: "review-2", FacilityID: "facility-1", CustomerID: "customer-2", Rating: 4},
	}

	t.Run("cache miss hits the store", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)

		m.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reviews, nil)

		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Len(t, res.Reviews, 2)
		assert.Equal(t, 2, res.TotalData)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
	})

	t.Run("count error", func(t *testing.T) {
		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestReviewService_Delete(t *testing.T) {
	review := model.Review{
		ID:         "review-1",
		FacilityID: "facility-1",
		CustomerID: "customer-1",
		Rating:     5,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m reviewMockSet)
		wantErr   bool
	}{
		{
			name: "author deletes own review",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "admin deletes any review",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1"),
				constant.ContextKeyUserRole, constant.RoleAdmin,
			),
			setupMock: func(m reviewMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "other customer is forbidden",
			ctx:  customerContext("customer-2"),
			setupMock: func(m reviewMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)
			},
			wantErr: true,
		},
		{
			name: "review not found",
			ctx:  customerContext("customer-1"),
			setupMock: func(m reviewMockSet) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newReviewService(ctrl)
			tt.setupMock(m)

			err := svc.Delete(tt.ctx, "review-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
