package auth

import (
	"ccsed-client/internal/app/config"
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type authUsecase struct {
	Gateway        contracts.Gateway
	SessionStore   contracts.SessionStore
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	gateway contracts.Gateway,
	sessionStore contracts.SessionStore,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		Gateway:        gateway,
		SessionStore:   sessionStore,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// Login rejects invalid input before any network call, then persists the
// issued credential, replacing whatever was stored.
func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*models.Session, error) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("authUsecase.Login rejected input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := uc.Gateway.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling Gateway.Login",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		return nil, err
	}

	if err := uc.SessionStore.Save(ctx, result.Credential); err != nil {
		uc.Log.Error("authUsecase.Login error calling SessionStore.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &models.Session{
		Credential:   result.Credential,
		IdentityName: result.Identity.Username,
		Valid:        true,
	}, nil
}

// Register creates the account. With AutoLoginAfterRegister it also runs the
// registration-login; a failure there still returns the created identity.
func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*contracts.RegisterOutput, error) {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeRegisterRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	identity, err := uc.Gateway.Register(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Register error calling Gateway.Register",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		return nil, err
	}
	output := &contracts.RegisterOutput{Identity: *identity}

	if uc.InternalConfig.Session.AutoLoginAfterRegister {
		session, err := uc.Login(ctx, &requests.LoginUser{
			Email:    request.Email,
			Password: request.Password,
		})
		if err != nil {
			return output, err
		}
		output.Session = session
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("auto_login", output.Session != nil),
	)
	return output, nil
}

func (uc *authUsecase) Logout(ctx context.Context) error {
	ctx = utils.WithRequestID(ctx)
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.SessionStore.Clear(ctx); err != nil {
		uc.Log.Error("authUsecase.Logout error calling SessionStore.Clear",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
