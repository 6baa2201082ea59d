package gateway

import (
	"bytes"
	"ccsed-client/internal/app/config"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/dto/responses"
	"ccsed-client/internal/pkg/exceptions"
	"ccsed-client/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type ClientConfig struct {
	BaseUrl string
	Timeout time.Duration
	// MaxRequestsPerSecond of zero or less disables pacing.
	MaxRequestsPerSecond int
	// HTTPClient overrides the default client, mostly for tests.
	HTTPClient *http.Client
}

func NewClientConfig(internalConfig *config.InternalConfig) ClientConfig {
	return ClientConfig{
		BaseUrl:              internalConfig.Backend.BaseUrl,
		Timeout:              time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
		MaxRequestsPerSecond: internalConfig.Backend.MaxRequestsPerSecond,
	}
}

// Client talks to the backend REST API. It implements both
// contracts.Gateway and contracts.DirectoryGateway.
type Client struct {
	baseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.MaxRequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxRequestsPerSecond), cfg.MaxRequestsPerSecond)
	}

	return &Client{
		baseUrl:    strings.TrimRight(cfg.BaseUrl, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		Log:        logger,
	}
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// apiCall describes one request. Credential is nil for public endpoints.
type apiCall struct {
	method     string
	endpoint   string
	resource   string
	credential *models.Credential
	body       interface{}
	// loginCall turns a 401 into an invalid-credentials error instead of an
	// expired-session one.
	loginCall bool
}

type apiResult struct {
	response *http.Response
	body     []byte
}

// do sends the call and classifies any non-2xx status. The response body is
// fully read and closed before returning.
func (c *Client) do(ctx context.Context, call apiCall) (*apiResult, error) {
	requestID := utils.GetRequestID(ctx)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, call.method),
		zap.String(constvars.LoggingEndpointKey, call.endpoint),
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.Log.Error("gateway.Client.do error waiting for rate limiter", append(fields, zap.Error(err))...)
		return nil, classifyTransportError(err)
	}

	var payload io.Reader
	if call.body != nil {
		requestJSON, err := json.Marshal(call.body)
		if err != nil {
			c.Log.Error("gateway.Client.do error marshaling JSON", append(fields, zap.Error(err))...)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, c.baseUrl+call.endpoint, payload)
	if err != nil {
		c.Log.Error("gateway.Client.do error creating HTTP request", append(fields, zap.Error(err))...)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderUserAgent, constvars.UserAgentCLI)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if call.credential != nil {
		req.Header.Set(constvars.HeaderAuthorization, call.credential.BearerValue())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("gateway.Client.do error sending HTTP request", append(fields, zap.Error(err))...)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("gateway.Client.do error reading response body", append(fields, zap.Error(err))...)
		return nil, classifyReadError(err)
	}

	fields = append(fields,
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		classified := classifyStatus(resp.StatusCode, body, call)
		c.Log.Warn("gateway.Client.do backend returned an error status", append(fields, utils.ErrorFields(classified)...)...)
		return nil, classified
	}

	c.Log.Debug("gateway.Client.do succeeded", fields...)
	return &apiResult{response: resp, body: body}, nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrSendHTTPRequest(err)
}

func classifyReadError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return exceptions.ErrReadHTTPResponse(err)
}

// classifyStatus maps a non-2xx status onto the error taxonomy: 401 is an
// auth failure, every other 4xx a validation failure carrying the server
// message, anything else a server failure.
func classifyStatus(statusCode int, body []byte, call apiCall) error {
	serverMessage := extractServerMessage(body)
	cause := fmt.Errorf("status %d: %s", statusCode, serverMessage)

	switch {
	case statusCode == constvars.StatusUnauthorized && call.loginCall:
		return exceptions.ErrInvalidCredentials(cause, statusCode)
	case statusCode == constvars.StatusUnauthorized:
		return exceptions.ErrBackendUnauthorized(cause, statusCode, call.resource)
	case statusCode >= 400 && statusCode < 500:
		return exceptions.ErrBackendValidation(cause, statusCode, serverMessage, call.resource)
	default:
		return exceptions.ErrBackendServer(cause, statusCode, call.resource)
	}
}

func extractServerMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var errorBody responses.ErrorBody
	if err := json.Unmarshal(body, &errorBody); err != nil {
		return ""
	}
	if errorBody.Message != "" {
		return errorBody.Message
	}
	return errorBody.Error
}

func decodeBody(body []byte, target interface{}, resource string) error {
	if err := json.Unmarshal(body, target); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}
