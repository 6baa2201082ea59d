package gateway

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/dto/responses"
	"ccsed-client/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

var (
	_ contracts.Gateway          = (*Client)(nil)
	_ contracts.DirectoryGateway = (*Client)(nil)
)

func (c *Client) Login(ctx context.Context, request *requests.LoginUser) (*contracts.LoginResult, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("gateway.Client.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := c.do(ctx, apiCall{
		method:    constvars.MethodPost,
		endpoint:  constvars.EndpointLogin,
		resource:  constvars.ResourceCredential,
		body:      request,
		loginCall: true,
	})
	if err != nil {
		return nil, err
	}

	// A login body that is not JSON can still carry the token in a cookie.
	var body responses.LoginUser
	_ = decodeBody(result.body, &body, constvars.ResourceCredential)

	credential, err := extractCredential(body.Token, result.response)
	if err != nil {
		c.Log.Error("gateway.Client.Login error extracting credential",
			append([]zap.Field{zap.String(constvars.LoggingRequestIDKey, requestID)}, utils.ErrorFields(err)...)...,
		)
		return nil, err
	}

	c.Log.Info("gateway.Client.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &contracts.LoginResult{
		Credential: credential,
		Identity:   models.Identity{Username: body.Username},
	}, nil
}

func (c *Client) Register(ctx context.Context, request *requests.RegisterUser) (*models.Identity, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("gateway.Client.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := c.do(ctx, apiCall{
		method:   constvars.MethodPost,
		endpoint: constvars.EndpointRegister,
		resource: constvars.ResourceCredential,
		body:     request,
	})
	if err != nil {
		return nil, err
	}

	// Some deployments answer with an empty body; the request itself is the identity then.
	identity := &models.Identity{Username: request.Username, Email: request.Email}
	if len(result.body) > 0 {
		var body responses.RegisterUser
		if err := decodeBody(result.body, &body, constvars.ResourceCredential); err == nil {
			identity.ID = body.ID
			if body.Username != "" {
				identity.Username = body.Username
			}
			if body.Email != "" {
				identity.Email = body.Email
			}
		}
	}

	c.Log.Info("gateway.Client.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return identity, nil
}

func (c *Client) Verify(ctx context.Context, credential models.Credential) (*models.Identity, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("gateway.Client.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := c.do(ctx, apiCall{
		method:     constvars.MethodGet,
		endpoint:   constvars.EndpointVerify,
		resource:   constvars.ResourceSession,
		credential: &credential,
	})
	if err != nil {
		return nil, err
	}

	var body responses.VerifyUser
	if err := decodeBody(result.body, &body, constvars.ResourceSession); err != nil {
		c.Log.Error("gateway.Client.Verify error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("gateway.Client.Verify succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &models.Identity{
		ID:       body.ID,
		Username: body.Username,
		Email:    body.Email,
	}, nil
}
