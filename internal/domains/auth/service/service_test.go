package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	"safar/infras/jwt"
	"safar/infras/otel/mocks"
	"safar/internal/domains/auth/model/dto"
	"safar/internal/domains/auth/service"
	userMocks "safar/internal/domains/user/mocks"
	userModel "safar/internal/domains/user/model"
	"safar/shared/constant"
	"safar/shared/failure"
	"safar/shared/password"
)

func testJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "safar-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestAuthService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, testJWT(), mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.SignupRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful signup",
			req: dto.SignupRequest{
				Email:    "aisha@example.com",
				Password: "s3cret-password",
				Name:     "Aisha Rahman",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					ExistsByEmail(gomock.Any(), "aisha@example.com").
					Return(false, nil)
				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "aisha@example.com", user.Email)
						assert.Equal(t, constant.RoleUser, user.Role)
						assert.True(t, user.Active)
						assert.NotEqual(t, "s3cret-password", user.Password)
						if assert.NotNil(t, user.FullName) {
							assert.Equal(t, "Aisha Rahman", *user.FullName)
						}
						return nil
					})
			},
		},
		{
			name: "email already registered",
			req: dto.SignupRequest{
				Email:    "aisha@example.com",
				Password: "s3cret-password",
				Name:     "Aisha Rahman",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					ExistsByEmail(gomock.Any(), "aisha@example.com").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "existence check failure",
			req: dto.SignupRequest{
				Email:    "aisha@example.com",
				Password: "s3cret-password",
				Name:     "Aisha Rahman",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					ExistsByEmail(gomock.Any(), "aisha@example.com").
					Return(false, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Signup(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, res.Success)
				assert.Equal(t, tt.req.Email, res.User.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, testJWT(), mocks.NewOtel())

	hashed, err := password.Hash("s3cret-password")
	assert.NoError(t, err)

	activeUser := userModel.User{
		ID:       "user-1",
		Email:    "aisha@example.com",
		Password: hashed,
		Role:     constant.RoleAdmin,
		Active:   true,
	}

	t.Run("successful login", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), "aisha@example.com").
			Return(activeUser, nil)
		mockUserRepo.EXPECT().
			UpdateLastLogin(gomock.Any(), "user-1", gomock.Any()).
			Return(nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "aisha@example.com",
			Password: "s3cret-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, "user-1", res.User.ID)
	})

	t.Run("last login bookkeeping failure does not block login", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), "aisha@example.com").
			Return(activeUser, nil)
		mockUserRepo.EXPECT().
			UpdateLastLogin(gomock.Any(), "user-1", gomock.Any()).
			Return(errors.New("write timeout"))

		res, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "aisha@example.com",
			Password: "s3cret-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), "aisha@example.com").
			Return(activeUser, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "aisha@example.com",
			Password: "wrong",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("unknown email produces the same failure as wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), "nobody@example.com").
			Return(userModel.User{}, errors.New("user not found"))

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "s3cret-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		deactivated := activeUser
		deactivated.Active = false

		mockUserRepo.EXPECT().
			GetByEmail(gomock.Any(), "aisha@example.com").
			Return(deactivated, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{
			Email:    "aisha@example.com",
			Password: "s3cret-password",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	jwtService := testJWT()
	svc := service.New(mockUserRepo, jwtService, mocks.NewOtel())

	t.Run("valid refresh token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair("user-1", "aisha@example.com", constant.RoleUser)
		assert.NoError(t, err)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: pair.RefreshToken,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: "not-a-token",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair("user-1", "aisha@example.com", constant.RoleUser)
		assert.NoError(t, err)

		_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{
			RefreshToken: pair.AccessToken,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
