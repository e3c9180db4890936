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
	userMocks "lagoon/internal/domains/user/mocks"
	"lagoon/internal/domains/user/model"
	"lagoon/internal/domains/user/model/dto"
	"lagoon/internal/domains/user/service"
	cacheMocks "lagoon/shared/cache/mocks"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
)

func newUserService(ctrl *gomock.Controller) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Username: "newaffiliate",
		Email:    "affiliate@example.com",
		Password: "password123",
		Role:     constant.RoleAffiliate,
	}

	tests := []struct {
		name      string
		setupMock func(mockRepo *userMocks.MockUser, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *userMocks.MockUser, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			setupMock: func(mockRepo *userMocks.MockUser, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "username already taken",
			setupMock: func(mockRepo *userMocks.MockUser, mockCache *cacheMocks.MockRedisCache) {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo, mockCache := newUserService(ctrl)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextGuest, "admin-1")
			err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_Get(t *testing.T) {
	user := model.User{
		ID:       "user-1",
		Username: "affiliate",
		Email:    "affiliate@example.com",
		Role:     constant.RoleAffiliate,
		Active:   true,
	}

	t.Run("cache miss, found in store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache := newUserService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "user-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)
		assert.Equal(t, user.Email, res.Email)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo, mockCache := newUserService(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newUserService(ctrl)

	users := []model.User{
		{ID: "user-1", Username: "customer", Role: constant.RoleCustomer},
		{ID: "user-2", Username: "affiliate", Role: constant.RoleAffiliate},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(users, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 2, res.TotalData)
}
