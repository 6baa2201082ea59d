package contracts

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/dto/requests"
	"context"
)

type RegisterOutput struct {
	Identity models.Identity
	// Session is set only when the registration-login ran
	Session *models.Session
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.LoginUser) (*models.Session, error)
	Register(ctx context.Context, request *requests.RegisterUser) (*RegisterOutput, error)
	Logout(ctx context.Context) error
}
