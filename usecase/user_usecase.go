package usecase

import (
	"context"
	"time"

	"crosscast/domain/dto"
	"crosscast/domain/model"
	"crosscast/domain/repository"
	"crosscast/infrastructure/logger"
	"crosscast/infrastructure/utils"

	"github.com/google/uuid"
)

type IUserUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) dto.Res
	Register(ctx context.Context, req model.ReqRegister) dto.Res
}

type userUsecase struct {
	userRepo  repository.IUser
	secretKey string
}

func NewUserUsecase(userRepo repository.IUser, secretKey string) IUserUsecase {
	return &userUsecase{userRepo: userRepo, secretKey: secretKey}
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) dto.Res {
	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil || user == nil {
		return dto.Res{ResponseCode: "401", ResponseMessage: "Invalid username or password"}
	}
	if user.Password != req.Password {
		return dto.Res{ResponseCode: "401", ResponseMessage: "Invalid username or password"}
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"user_name": user.UserName,
		"iss":       user.ID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}, u.secretKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while generating token")
		return dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"}
	}
	return dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: map[string]interface{}{
		"token": token,
		"user":  user,
	}}
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister) dto.Res {
	if existing, err := u.userRepo.GetByUserName(ctx, req.UserName); err == nil && existing != nil {
		return dto.Res{ResponseCode: "409", ResponseMessage: "User already exists"}
	}
	user := &model.User{
		ID:        uuid.NewString(),
		UserName:  req.UserName,
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		return dto.Res{ResponseCode: "500", ResponseMessage: "Failed to create user"}
	}
	return dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: user}
}
