package clients

import (
	"context"
	"fmt"
	"net/http"
	"trips/entity"
)

type InsuranceClient struct {
	gateway *Gateway
}

func NewInsuranceClient(gateway *Gateway) InsuranceClient {
	return InsuranceClient{
		gateway: gateway,
	}
}

func (c InsuranceClient) ListPlans(ctx context.Context) ([]entity.InsurancePlan, error) {
	var plans []entity.InsurancePlan
	if err := c.gateway.do(ctx, http.MethodGet, "/api/insurance/plans", nil, &plans); err != nil {
		return nil, fmt.Errorf("listing insurance plans: %w", err)
	}

	return plans, nil
}

func (c InsuranceClient) GetPlan(ctx context.Context, planID string) (entity.InsurancePlan, error) {
	var plan entity.InsurancePlan
	if err := c.gateway.do(ctx, http.MethodGet, "/api/insurance/plans/"+planID, nil, &plan); err != nil {
		return entity.InsurancePlan{}, fmt.Errorf("getting insurance plan %s: %w", planID, err)
	}

	return plan, nil
}
