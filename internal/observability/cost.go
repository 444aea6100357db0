package observability

import (
	"strconv"

	"github.com/Conceptual-Machines/rug-loom/internal/llm"
)

// Pricing constants
const (
	tokensPerKilo       = 1000.0
	costFormatPrecision = 6

	// Gemini 3 Flash pricing
	gemini3FlashInputPrice  = 0.0005
	gemini3FlashOutputPrice = 0.003

	// Gemini 2.5 Flash pricing
	gemini25FlashInputPrice  = 0.0003
	gemini25FlashOutputPrice = 0.0025

	// GPT-5-mini pricing
	gpt5MiniInputPrice  = 0.00025
	gpt5MiniOutputPrice = 0.002

	// GPT-4o-mini pricing
	gpt4oMiniInputPrice  = 0.00015
	gpt4oMiniOutputPrice = 0.0006
)

// defaultPricingModel is charged for models missing from the table
const defaultPricingModel = llm.DefaultGeminiModel

// ModelPricing contains pricing information per 1K tokens
type ModelPricing struct {
	InputPricePer1K  float64 // Price per 1K input tokens in USD
	OutputPricePer1K float64 // Price per 1K output tokens in USD
}

// PricingTable contains pricing for the theme models
var PricingTable = map[string]ModelPricing{
	"gemini-3-flash-preview": {
		InputPricePer1K:  gemini3FlashInputPrice,
		OutputPricePer1K: gemini3FlashOutputPrice,
	},
	"gemini-2.5-flash": {
		InputPricePer1K:  gemini25FlashInputPrice,
		OutputPricePer1K: gemini25FlashOutputPrice,
	},
	"gpt-5-mini": {
		InputPricePer1K:  gpt5MiniInputPrice,
		OutputPricePer1K: gpt5MiniOutputPrice,
	},
	"gpt-4o-mini": {
		InputPricePer1K:  gpt4oMiniInputPrice,
		OutputPricePer1K: gpt4oMiniOutputPrice,
	},
}

// CalculateCost calculates the cost in USD for one theme call
func CalculateCost(model string, usage llm.Usage) float64 {
	pricing, exists := PricingTable[model]
	if !exists {
		pricing = PricingTable[defaultPricingModel]
	}

	inputCost := (float64(usage.InputTokens) / tokensPerKilo) * pricing.InputPricePer1K
	outputCost := (float64(usage.OutputTokens) / tokensPerKilo) * pricing.OutputPricePer1K

	return inputCost + outputCost
}

// FormatCost formats a cost value as a USD string
func FormatCost(cost float64) string {
	return "$" + formatFloat(cost, costFormatPrecision)
}

// formatFloat formats a float with specified precision using strconv
func formatFloat(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
