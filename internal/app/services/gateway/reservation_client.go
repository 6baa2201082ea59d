package gateway

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/requests"
	"ccsed-client/internal/pkg/dto/responses"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"
	"errors"

	"go.uber.org/zap"
)

func (c *Client) ListMyReservations(ctx context.Context, credential models.Credential) ([]models.Reservation, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("gateway.Client.ListMyReservations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := c.do(ctx, apiCall{
		method:     constvars.MethodGet,
		endpoint:   constvars.EndpointMyReservations,
		resource:   constvars.ResourceReservations,
		credential: &credential,
	})
	if err != nil {
		return nil, err
	}

	var body responses.ReservationList
	if err := decodeBody(result.body, &body, constvars.ResourceReservations); err != nil {
		c.Log.Error("gateway.Client.ListMyReservations error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	reservations := make([]models.Reservation, 0, len(body.Docs))
	for _, doc := range body.Docs {
		reservations = append(reservations, utils.ConvertReservationResponse(doc))
	}

	c.Log.Info("gateway.Client.ListMyReservations succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(reservations)),
	)
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, credential models.Credential, request *requests.CreateReservation) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("gateway.Client.CreateReservation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := c.do(ctx, apiCall{
		method:     constvars.MethodPost,
		endpoint:   constvars.EndpointCreateReservation,
		resource:   constvars.ResourceReservation,
		credential: &credential,
		body:       request,
	})
	if err != nil {
		return "", err
	}

	var body responses.CreatedReservation
	if err := decodeBody(result.body, &body, constvars.ResourceReservation); err != nil {
		c.Log.Error("gateway.Client.CreateReservation error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	if body.ID == "" {
		return "", exceptions.ErrDecodeResponse(errors.New("created reservation has no _id"), constvars.ResourceReservation)
	}

	c.Log.Info("gateway.Client.CreateReservation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReservationIDKey, body.ID),
	)
	return body.ID, nil
}
