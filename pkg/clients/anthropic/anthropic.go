package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/go-resty/resty/v2"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-haiku-20240307"
	maxTokens  = 1024
)

// Client defines the advisory operations backed by the LLM. Each call feeds a
// snapshot of the franchise numbers into a templated prompt and parses a
// schema-shaped JSON reply.
type Client interface {
	SuggestCostSavings(ctx context.Context, input CostSavingsInput) (CostSavingsResult, error)
	SuggestFocusAreas(ctx context.Context, input FocusAreasInput) (FocusAreasResult, error)
	GenerateTargetSales(ctx context.Context, input TargetSalesInput) (TargetSalesResult, error)
}

// CostSavingsInput is the expense snapshot for the cost-saving analysis.
type CostSavingsInput struct {
	Revenue         float64 `json:"revenue"`
	RoyaltyFee      float64 `json:"royaltyFee"`
	StaffCost       float64 `json:"staffCost"`
	InventoryCost   float64 `json:"inventoryCost"`
	OtherExpenses   string  `json:"otherExpenses"`
	PeriodsAnalyzed int     `json:"periodsAnalyzed"`
}

// CostSavingsResult carries the advisory paragraph back to the caller.
type CostSavingsResult struct {
	Suggestions string `json:"suggestions"`
}

// FocusAreasInput wraps the serialized historical series.
type FocusAreasInput struct {
	PeriodsData string `json:"periodsData"`
}

// FocusAreasResult is the focus suggestion derived from the best periods.
type FocusAreasResult struct {
	FocusAreaSuggestion string `json:"focusAreaSuggestion"`
}

// TargetSalesInput holds past sales plus the owner's take-home goal.
type TargetSalesInput struct {
	PastSalesData      string  `json:"pastSalesData"`
	DesiredTakeHomePay float64 `json:"desiredTakeHomePay"`
}

// TargetSalesResult is the suggested sales target and its rationale.
type TargetSalesResult struct {
	TargetSales float64 `json:"targetSales"`
	Reasoning   string  `json:"reasoning"`
}

type anthropicClient struct {
	httpClient *resty.Client
}

// NewClient creates a configured Anthropic client.
func NewClient(apiKey string) Client {
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(15 * time.Second)

	return &anthropicClient{httpClient: client}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *anthropicClient) SuggestCostSavings(ctx context.Context, input CostSavingsInput) (CostSavingsResult, error) {
	system := `You are a financial advisor for franchisees. Analyze the expense data the user provides and identify potential cost-saving opportunities, such as reducing staff costs or renegotiating fees. Focus on specific, actionable steps to improve profitability. Respond with ONLY a JSON object: {"suggestions": "one concise paragraph of suggestions"}.`

	user := fmt.Sprintf(
		"Revenue: %.2f\nRoyalty Fee: %.2f\nStaff Cost: %.2f\nInventory Cost: %.2f\nOther Expenses: %s\nPeriods analyzed: %d",
		input.Revenue, input.RoyaltyFee, input.StaffCost, input.InventoryCost, input.OtherExpenses, input.PeriodsAnalyzed)

	var result CostSavingsResult
	if err := c.complete(ctx, system, user, &result); err != nil {
		return CostSavingsResult{}, err
	}
	return result, nil
}

func (c *anthropicClient) SuggestFocusAreas(ctx context.Context, input FocusAreasInput) (FocusAreasResult, error) {
	system := `You are a business consultant specializing in franchise performance optimization. Analyze the historical periods data provided, identify patterns from the best-performing periods, and suggest specific, actionable strategies to replicate their success and maximize sales. Respond with ONLY a JSON object: {"focusAreaSuggestion": "your suggestion"}.`

	user := fmt.Sprintf("Periods Data: %s", input.PeriodsData)

	var result FocusAreasResult
	if err := c.complete(ctx, system, user, &result); err != nil {
		return FocusAreasResult{}, err
	}
	return result, nil
}

func (c *anthropicClient) GenerateTargetSales(ctx context.Context, input TargetSalesInput) (TargetSalesResult, error) {
	system := `You help franchisees set realistic sales goals. Analyze the past sales data and suggest a target sales figure that reaches the desired take-home pay, considering seasonality and trends. Respond with ONLY a JSON object: {"targetSales": number, "reasoning": "brief explanation"}.`

	user := fmt.Sprintf("Past Sales Data: %s\nDesired Take-Home Pay: %.2f", input.PastSalesData, input.DesiredTakeHomePay)

	var result TargetSalesResult
	if err := c.complete(ctx, system, user, &result); err != nil {
		return TargetSalesResult{}, err
	}
	return result, nil
}

// complete runs one messages-API round trip and decodes the JSON reply into
// out. The assistant turn is prefilled with an opening brace to force JSON
// output.
func (c *anthropicClient) complete(ctx context.Context, system, user string, out any) error {
	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    system,
		Messages: []Message{
			{Role: "user", Content: user},
			{Role: "assistant", Content: "{"},
		},
	}

	var respBody messageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)

	if err != nil {
		return fmt.Errorf("anthropic api call: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("anthropic api error: %s", resp.String())
	}
	if len(respBody.Content) == 0 {
		return fmt.Errorf("empty response from ai")
	}

	// Reconstruct the full JSON since we prefilled the opening brace.
	return decodeModelJSON("{"+respBody.Content[0].Text, out)
}

// decodeModelJSON strips markdown fences the model sometimes wraps around its
// reply and repairs minor JSON damage before unmarshalling.
func decodeModelJSON(text string, out any) error {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	if err := json.Unmarshal([]byte(text), out); err == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(text)
	if err != nil {
		return fmt.Errorf("unparseable ai response: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("failed to unmarshal ai response: %w", err)
	}
	return nil
}
