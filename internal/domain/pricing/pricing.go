// Package pricing holds the static price table used to estimate the monetary
// cost of upstream API calls.
package pricing

import "github.com/shopspring/decimal"

// ModelPrice is the USD price per one million tokens for a chat model.
type ModelPrice struct {
	Input  decimal.Decimal
	Output decimal.Decimal
}

// DefaultModel is used when a chat request does not name a model, and its
// price entry is the fallback for unrecognised model identifiers.
const DefaultModel = "gpt-4o"

// ImageModel is the only model routed through the image generation branch of
// the chat gateway.
const ImageModel = "dall-e-3"

var modelPrices = map[string]ModelPrice{
	"gpt-4o":        {Input: decimal.NewFromFloat(2.50), Output: decimal.NewFromFloat(10.00)},
	"gpt-4o-mini":   {Input: decimal.NewFromFloat(0.15), Output: decimal.NewFromFloat(0.60)},
	"gpt-4-turbo":   {Input: decimal.NewFromFloat(10.00), Output: decimal.NewFromFloat(30.00)},
	"gpt-4":         {Input: decimal.NewFromFloat(30.00), Output: decimal.NewFromFloat(60.00)},
	"gpt-3.5-turbo": {Input: decimal.NewFromFloat(0.50), Output: decimal.NewFromFloat(1.50)},
}

// imagePrices is the fixed USD cost of a single generated image per model.
var imagePrices = map[string]decimal.Decimal{
	"dall-e-3": decimal.NewFromFloat(0.040),
	"dall-e-2": decimal.NewFromFloat(0.020),
}

var million = decimal.NewFromInt(1_000_000)

// PriceFor returns the price entry for the given model, falling back to the
// default entry when the identifier is unrecognised.
func PriceFor(model string) ModelPrice {
	if price, ok := modelPrices[model]; ok {
		return price
	}
	return modelPrices[DefaultModel]
}

// CompletionCost computes the USD cost of a chat completion:
// (prompt_tokens * input_price + completion_tokens * output_price) / 1e6.
func CompletionCost(model string, promptTokens, completionTokens int) decimal.Decimal {
	price := PriceFor(model)
	promptCost := price.Input.Mul(decimal.NewFromInt(int64(promptTokens)))
	completionCost := price.Output.Mul(decimal.NewFromInt(int64(completionTokens)))
	return promptCost.Add(completionCost).Div(million)
}

// ImageCost returns the fixed per-image USD cost for an image model,
// defaulting to the dall-e-3 rate for unrecognised identifiers.
func ImageCost(model string) decimal.Decimal {
	if price, ok := imagePrices[model]; ok {
		return price
	}
	return imagePrices[ImageModel]
}

// IsImageModel reports whether the model identifier selects the image
// generation branch.
func IsImageModel(model string) bool {
	_, ok := imagePrices[model]
	return ok
}

// ToDisplay converts a persisted USD cost to the display currency using the
// fixed exchange rate, rounded to two decimal places. The conversion is a
// presentation concern only; stored costs stay in USD.
func ToDisplay(cost, rate decimal.Decimal) decimal.Decimal {
	return cost.Mul(rate).Round(2)
}
