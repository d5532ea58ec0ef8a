package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"partner-portal.backend/internal/domain/entities"
	"partner-portal.backend/pkg/logger"
)

// FallbackAnalysis is returned whenever the text-generation service fails or
// times out. Advisory output is best-effort and never surfaces an error.
const FallbackAnalysis = "Performance analysis is temporarily unavailable. Please try again later."

var errEmptyResponse = errors.New("advisor returned no candidates")

// Client calls the Gemini generateContent API for advisory text. It is the
// only integration point with the external text-generation collaborator.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	timeout    time.Duration
}

// NewClient creates a new advisor client
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		timeout:    timeout,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// AnalyzeReferralPerformance returns a free-text performance analysis over a
// snapshot of the roster and referral log. Degrades to a static message.
func (c *Client) AnalyzeReferralPerformance(ctx context.Context, associates []*entities.Associate, referrals []*entities.Referral) string {
	rosterJSON, err := json.Marshal(associates)
	if err != nil {
		return FallbackAnalysis
	}
	referralsJSON, err := json.Marshal(referrals)
	if err != nil {
		return FallbackAnalysis
	}

	prompt := fmt.Sprintf(`Analyze the following associate referral data for a referral partner program.
Associates: %s
Referrals: %s

Please provide:
1. A summary of overall performance.
2. Identification of the top-performing associate.
3. Three actionable tips to improve the referral model.
4. A prediction for next month's growth based on current trends.

Respond in a professional business tone.`, rosterJSON, referralsJSON)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		logger.Warn(ctx, "Advisor analysis failed, using fallback", zap.Error(err))
		return FallbackAnalysis
	}
	return text
}

// WelcomeTip returns a short motivating message for a newly signed-in
// associate. Degrades to a static greeting.
func (c *Client) WelcomeTip(ctx context.Context, associateName string) string {
	prompt := fmt.Sprintf("Provide a short, motivating welcome message and one quick tip for a new associate named %s joining a shop-partner referral program. Keep it under 100 words.", associateName)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		logger.Warn(ctx, "Advisor welcome tip failed, using fallback", zap.Error(err))
		return fmt.Sprintf("Welcome, %s! Start sharing your QR code to earn referral points today!", associateName)
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errEmptyResponse
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
