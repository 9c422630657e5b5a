package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"trips/entity"
)

type ReviewsClient struct {
	gateway *Gateway
}

func NewReviewsClient(gateway *Gateway) ReviewsClient {
	return ReviewsClient{
		gateway: gateway,
	}
}

type ReviewRequest struct {
	UserID    string `json:"user_id"`
	PackageID string `json:"package_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (c ReviewsClient) Create(ctx context.Context, req ReviewRequest) (entity.Review, error) {
	var review entity.Review
	if err := c.gateway.do(ctx, http.MethodPost, "/api/reviews", req, &review); err != nil {
		return entity.Review{}, fmt.Errorf("creating review: %w", err)
	}

	return review, nil
}

func (c ReviewsClient) ListByPackage(ctx context.Context, packageID string) ([]entity.Review, error) {
	path := "/api/reviews?" + url.Values{"package_id": {packageID}}.Encode()

	var reviews []entity.Review
	if err := c.gateway.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, fmt.Errorf("listing reviews for package %s: %w", packageID, err)
	}

	return reviews, nil
}

func (c ReviewsClient) Respond(ctx context.Context, reviewID, response string) (entity.Review, error) {
	req := struct {
		Response string `json:"response"`
	}{
		Response: response,
	}

	var review entity.Review
	if err := c.gateway.do(ctx, http.MethodPut, "/api/reviews/"+reviewID+"/response", req, &review); err != nil {
		return entity.Review{}, fmt.Errorf("responding to review %s: %w", reviewID, err)
	}

	return review, nil
}
