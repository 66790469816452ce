package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/ports"
)

var _ ports.EstimateProvider = (*EstimateProvider)(nil)

const estimatePrompt = `Determine the best delivery category (Express, Standard, or Heavy) and a suggested price in BRL (R$) for a P2P delivery with these details:
Product: %s
Dimensions: %s
Weight: %s
Distance: %s.
Provide the result in JSON format.`

var estimateSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"category":       {Type: "STRING"},
		"estimatedPrice": {Type: "NUMBER"},
		"reasoning":      {Type: "STRING"},
		"riskLevel":      {Type: "STRING", Description: "Low, Medium, or High based on item description"},
	},
	Required: []string{"category", "estimatedPrice", "reasoning", "riskLevel"},
}

// estimatePayload uses a pointer for the price so a missing field is told
// apart from zero.
type estimatePayload struct {
	Category       string   `json:"category"`
	EstimatedPrice *float64 `json:"estimatedPrice"`
	Reasoning      string   `json:"reasoning"`
	RiskLevel      string   `json:"riskLevel"`
}

type EstimateProvider struct {
	client *Client
}

func NewEstimateProvider(client *Client) *EstimateProvider {
	return &EstimateProvider{client: client}
}

// Estimate asks the model for a structured estimate. Anything other than a
// complete, valid payload is reported as estimate.ErrSchemaViolation.
func (p *EstimateProvider) Estimate(ctx context.Context, req estimate.Request) (estimate.Estimate, error) {
	text, err := p.client.generate(ctx, generateRequest{
		Contents: userPrompt(fmt.Sprintf(estimatePrompt, req.Product(), req.Dimensions(), req.Weight(), req.Distance())),
		GenerationConfig: &generateConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   estimateSchema,
		},
	})
	switch {
	case errors.Is(err, ErrEmptyResponse):
		return estimate.Estimate{}, errors.Join(estimate.ErrSchemaViolation, err)
	case err != nil:
		return estimate.Estimate{}, err
	}

	return parseEstimate(text)
}

func parseEstimate(text string) (estimate.Estimate, error) {
	var payload estimatePayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		return estimate.Estimate{}, errors.Join(estimate.ErrSchemaViolation, err)
	}
	if payload.EstimatedPrice == nil {
		return estimate.Estimate{}, errors.Join(estimate.ErrSchemaViolation, errors.New("estimatedPrice is missing"))
	}
	return estimate.NewEstimate(payload.Category, *payload.EstimatedPrice, payload.Reasoning, payload.RiskLevel)
}
