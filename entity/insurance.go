package entity

type InsurancePlan struct {
	ID       string  `json:"plan_id"`
	Tier     string  `json:"tier"`
	Price    float64 `json:"price"`
	Coverage string  `json:"coverage"`
}
