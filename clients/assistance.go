package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"trips/entity"
)

type AssistanceClient struct {
	gateway *Gateway
}

func NewAssistanceClient(gateway *Gateway) AssistanceClient {
	return AssistanceClient{
		gateway: gateway,
	}
}

type AssistanceRequest struct {
	UserID  string `json:"user_id"`
	Subject string `json:"subject"`
	Issue   string `json:"issue"`
}

func (c AssistanceClient) Create(ctx context.Context, req AssistanceRequest) (entity.AssistanceRequest, error) {
	var request entity.AssistanceRequest
	if err := c.gateway.do(ctx, http.MethodPost, "/api/assistance", req, &request); err != nil {
		return entity.AssistanceRequest{}, fmt.Errorf("creating assistance request: %w", err)
	}

	return request, nil
}

func (c AssistanceClient) ListByUser(ctx context.Context, userID string) ([]entity.AssistanceRequest, error) {
	path := "/api/assistance?" + url.Values{"user_id": {userID}}.Encode()

	var requests []entity.AssistanceRequest
	if err := c.gateway.do(ctx, http.MethodGet, path, nil, &requests); err != nil {
		return nil, fmt.Errorf("listing assistance requests for user %s: %w", userID, err)
	}

	return requests, nil
}

func (c AssistanceClient) ListAll(ctx context.Context) ([]entity.AssistanceRequest, error) {
	var requests []entity.AssistanceRequest
	if err := c.gateway.do(ctx, http.MethodGet, "/api/assistance", nil, &requests); err != nil {
		return nil, fmt.Errorf("listing assistance requests: %w", err)
	}

	return requests, nil
}

func (c AssistanceClient) Resolve(ctx context.Context, requestID, resolution string) (entity.AssistanceRequest, error) {
	req := struct {
		Resolution string `json:"resolution"`
	}{
		Resolution: resolution,
	}

	var request entity.AssistanceRequest
	if err := c.gateway.do(ctx, http.MethodPut, "/api/assistance/"+requestID+"/resolve", req, &request); err != nil {
		return entity.AssistanceRequest{}, fmt.Errorf("resolving assistance request %s: %w", requestID, err)
	}

	return request, nil
}
