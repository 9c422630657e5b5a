package clients

import (
	"context"
	"fmt"
	"net/http"
	"trips/entity"
)

type PackagesClient struct {
	gateway *Gateway
}

func NewPackagesClient(gateway *Gateway) PackagesClient {
	return PackagesClient{
		gateway: gateway,
	}
}

func (c PackagesClient) List(ctx context.Context) ([]entity.TravelPackage, error) {
	var packages []entity.TravelPackage
	if err := c.gateway.do(ctx, http.MethodGet, "/api/packages", nil, &packages); err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}

	return packages, nil
}

func (c PackagesClient) Get(ctx context.Context, packageID string) (entity.TravelPackage, error) {
	var pkg entity.TravelPackage
	if err := c.gateway.do(ctx, http.MethodGet, "/api/packages/"+packageID, nil, &pkg); err != nil {
		return entity.TravelPackage{}, fmt.Errorf("getting package %s: %w", packageID, err)
	}

	return pkg, nil
}

type PackageRequest struct {
	AgentID      string  `json:"agent_id"`
	Title        string  `json:"title"`
	Destination  string  `json:"destination"`
	Description  string  `json:"description"`
	AdultPrice   float64 `json:"adult_price"`
	ChildPrice   float64 `json:"child_price"`
	DurationDays int     `json:"duration_days"`
	ImageURL     string  `json:"image_url,omitempty"`
	Active       bool    `json:"active"`
}

func (c PackagesClient) Create(ctx context.Context, req PackageRequest) (entity.TravelPackage, error) {
	var pkg entity.TravelPackage
	if err := c.gateway.do(ctx, http.MethodPost, "/api/packages", req, &pkg); err != nil {
		return entity.TravelPackage{}, fmt.Errorf("creating package: %w", err)
	}

	return pkg, nil
}

func (c PackagesClient) Update(ctx context.Context, packageID string, req PackageRequest) (entity.TravelPackage, error) {
	var pkg entity.TravelPackage
	if err := c.gateway.do(ctx, http.MethodPut, "/api/packages/"+packageID, req, &pkg); err != nil {
		return entity.TravelPackage{}, fmt.Errorf("updating package %s: %w", packageID, err)
	}

	return pkg, nil
}

func (c PackagesClient) Delete(ctx context.Context, packageID string) error {
	if err := c.gateway.do(ctx, http.MethodDelete, "/api/packages/"+packageID, nil, nil); err != nil {
		return fmt.Errorf("deleting package %s: %w", packageID, err)
	}

	return nil
}
