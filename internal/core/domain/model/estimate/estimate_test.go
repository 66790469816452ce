package estimate_test

import (
	"math"
	"testing"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	f := estimate.Fallback()

	require.NoError(t, f.Validate())
	assert.Equal(t, "Standard", f.Category())
	assert.True(t, f.EstimatedPrice().IsEqual(kernel.MustMoney("25.00")))
	assert.Equal(t, "Fallback estimate", f.Reasoning())
	assert.Equal(t, estimate.RiskLow, f.RiskLevel())
	assert.Equal(t, estimate.ProvenanceFallback, f.Provenance())
	assert.True(t, f.IsFallback())
}

func TestNewEstimate(t *testing.T) {
	t.Run("should accept a valid payload as generated", func(t *testing.T) {
		e, err := estimate.NewEstimate("Express", 18.5, "Small envelope, short distance", "low")

		require.NoError(t, err)
		assert.Equal(t, "Express", e.Category())
		assert.True(t, e.EstimatedPrice().IsEqual(kernel.MustMoney("18.50")))
		assert.Equal(t, estimate.RiskLow, e.RiskLevel())
		assert.Equal(t, estimate.ProvenanceGenerated, e.Provenance())
		assert.False(t, e.IsFallback())
	})

	t.Run("should accept categories outside the known set", func(t *testing.T) {
		e, err := estimate.NewEstimate("Fragile", 40, "Glass", "High")

		require.NoError(t, err)
		assert.Equal(t, "Fragile", e.Category())
	})

	tests := []struct {
		name      string
		category  string
		price     float64
		reasoning string
		risk      string
		wantErr   error
	}{
		{"blank category", " ", 10, "r", "Low", estimate.ErrCategoryIsRequired},
		{"zero price", "Standard", 0, "r", "Low", errs.ErrValueIsInvalid},
		{"negative price", "Standard", -3, "r", "Low", errs.ErrValueIsInvalid},
		{"nan price", "Standard", math.NaN(), "r", "Low", errs.ErrValueIsInvalid},
		{"infinite price", "Standard", math.Inf(1), "r", "Low", errs.ErrValueIsInvalid},
		{"price rounding to zero", "Standard", 0.001, "r", "Low", errs.ErrValueIsInvalid},
		{"missing reasoning", "Standard", 10, "", "Low", estimate.ErrReasoningIsRequired},
		{"unknown risk", "Standard", 10, "r", "Extreme", errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, err := estimate.NewEstimate(tt.category, tt.price, tt.reasoning, tt.risk)

			require.ErrorIs(t, err, estimate.ErrSchemaViolation)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseRiskLevel(t *testing.T) {
	for in, want := range map[string]estimate.RiskLevel{
		"low":     estimate.RiskLow,
		" MEDIUM": estimate.RiskMedium,
		"High":    estimate.RiskHigh,
	} {
		got, err := estimate.ParseRiskLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNewRequest(t *testing.T) {
	t.Run("should accept blank fields", func(t *testing.T) {
		r := estimate.NewRequest("  ", "", "", "")

		require.NoError(t, r.Validate())
		assert.Empty(t, r.Product())
		assert.Empty(t, r.Dimensions())
		assert.Empty(t, r.Weight())
	})

	t.Run("should trim free text", func(t *testing.T) {
		r := estimate.NewRequest(" Documentos ", " 30x20x2cm", "0.5kg ", "")

		assert.Equal(t, "Documentos", r.Product())
		assert.Equal(t, "30x20x2cm", r.Dimensions())
		assert.Equal(t, "0.5kg", r.Weight())
	})

	t.Run("should default blank distance only", func(t *testing.T) {
		r := estimate.NewRequest("Documentos", "30x20x2cm", "0.5kg", "")
		assert.Equal(t, "5.2km", r.WithDefaultDistance("5.2km").Distance())

		r = estimate.NewRequest("Documentos", "", "", "12km")
		assert.Equal(t, "12km", r.WithDefaultDistance("5.2km").Distance())
	})

	t.Run("zero value request is not constructed", func(t *testing.T) {
		require.ErrorIs(t, estimate.Request{}.Validate(), estimate.ErrRequestIsNotConstructed)
	})
}

func TestRequest_SameParcel(t *testing.T) {
	envelope := estimate.NewRequest("Documentos", "30x20x2cm", "0.5kg", "5.2km")

	tests := []struct {
		name  string
		other estimate.Request
		want  bool
	}{
		{"identical", estimate.NewRequest("Documentos", "30x20x2cm", "0.5kg", "5.2km"), true},
		{"case and spacing differ", estimate.NewRequest(" documentos", "30X20X2CM", "0.5KG", ""), true},
		{"distance differs", estimate.NewRequest("Documentos", "30x20x2cm", "0.5kg", "40km"), true},
		{"product differs", estimate.NewRequest("Geladeira", "30x20x2cm", "0.5kg", ""), false},
		{"dimensions differ", estimate.NewRequest("Documentos", "180x70x70cm", "0.5kg", ""), false},
		{"weight differs", estimate.NewRequest("Documentos", "30x20x2cm", "90kg", ""), false},
		{"blank against filled", estimate.NewRequest("", "", "", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, envelope.SameParcel(tt.other))
		})
	}
}
