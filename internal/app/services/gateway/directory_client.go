package gateway

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/responses"
	"ccsed-client/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

// listPublic fetches one of the unauthenticated reference-data arrays.
func listPublic[T any](ctx context.Context, c *Client, endpoint, resource string) ([]T, error) {
	requestID := utils.GetRequestID(ctx)

	result, err := c.do(ctx, apiCall{
		method:   constvars.MethodGet,
		endpoint: endpoint,
		resource: resource,
	})
	if err != nil {
		return nil, err
	}

	var items []T
	if err := decodeBody(result.body, &items, resource); err != nil {
		c.Log.Error("gateway.Client.listPublic error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Debug("gateway.Client.listPublic succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Int(constvars.LoggingResponseCountKey, len(items)),
	)
	return items, nil
}

func convertAll[S, D any](items []S, convert func(S) D) []D {
	converted := make([]D, 0, len(items))
	for _, item := range items {
		converted = append(converted, convert(item))
	}
	return converted
}

func (c *Client) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	items, err := listPublic[responses.Hospital](ctx, c, constvars.EndpointHospitals, constvars.ResourceHospitals)
	if err != nil {
		return nil, err
	}
	return convertAll(items, utils.ConvertHospitalResponse), nil
}

func (c *Client) ListPharmacies(ctx context.Context) ([]models.Pharmacy, error) {
	items, err := listPublic[responses.Pharmacy](ctx, c, constvars.EndpointPharmacies, constvars.ResourcePharmacies)
	if err != nil {
		return nil, err
	}
	return convertAll(items, utils.ConvertPharmacyResponse), nil
}

func (c *Client) ListLaboratories(ctx context.Context) ([]models.Laboratory, error) {
	items, err := listPublic[responses.Laboratory](ctx, c, constvars.EndpointLaboratories, constvars.ResourceLaboratories)
	if err != nil {
		return nil, err
	}
	return convertAll(items, utils.ConvertLaboratoryResponse), nil
}

func (c *Client) ListPhoneLines(ctx context.Context) ([]models.PhoneLine, error) {
	items, err := listPublic[responses.PhoneLine](ctx, c, constvars.EndpointPhoneLines, constvars.ResourcePhoneLines)
	if err != nil {
		return nil, err
	}
	return convertAll(items, utils.ConvertPhoneLineResponse), nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	items, err := listPublic[responses.Doctor](ctx, c, constvars.EndpointDoctors, constvars.ResourceDoctors)
	if err != nil {
		return nil, err
	}
	return convertAll(items, utils.ConvertDoctorResponse), nil
}

func (c *Client) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	items, err := listPublic[responses.Announcement](ctx, c, constvars.EndpointAnnouncements, constvars.ResourceAnnouncements)
	if err != nil {
		return nil, err
	}
	return convertAll(items, func(a responses.Announcement) models.Announcement {
		return utils.ConvertAnnouncementResponse(a, c.baseUrl)
	}), nil
}
