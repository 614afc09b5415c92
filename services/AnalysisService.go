package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"optifolio.app/types"
)

// ErrAnalysisUnavailable means no Gemini API key is configured.
var ErrAnalysisUnavailable = errors.New("GEMINI_API_KEY not set")

const analysisModel = "gemini-2.5-flash"

// AnalyzeStrategy asks Gemini to name and explain the option strategy formed
// by the given legs. The answer is plain explanatory text; the prompt
// explicitly rules out financial advice.
func AnalyzeStrategy(ctx context.Context, legs []types.Transaction) (string, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return "", ErrAnalysisUnavailable
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("creating Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, analysisModel, genai.Text(strategyPrompt(legs)), nil)
	if err != nil {
		return "", fmt.Errorf("asking Gemini: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from Gemini")
	}
	return text, nil
}

func strategyPrompt(legs []types.Transaction) string {
	var described []string
	for _, t := range legs {
		if !t.IsOption() {
			described = append(described, fmt.Sprintf(
				"a %s of %d shares of %s at a price of %g %s",
				t.Action, t.Quantity, t.DisplayName(), t.TransactionPrice, t.Currency))
			continue
		}
		kind := strings.TrimSuffix(string(t.AssetType), " Option")
		described = append(described, fmt.Sprintf(
			"a %s of %d %s options on %s with a strike price of %g %s and a premium of %g %s",
			t.Action, t.Quantity, kind, t.DisplayName(),
			t.StrikePrice, t.Currency, t.Premium, t.Currency))
	}

	return "Based on the following list of transactions, identify the type of options trading strategy " +
		"being employed and provide a short, simple explanation of its characteristics, including its " +
		"risk profile and potential for profit and loss. Do not include financial advice, just a general " +
		"explanation. Transactions: " + strings.Join(described, ", ") + "."
}
