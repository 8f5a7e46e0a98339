package digest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Shwinn/fantasy-football-alerts/news"
)

// LLM request settings. The chat completions API is called directly over
// HTTP; no SDK is used.
const (
	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	openAIModel    = "gpt-5-nano"
	llmTimeout     = 60 * time.Second
)

const systemPrompt = `You are an expert fantasy football analyst. Summarize today's NFL player news to identify potential waiver pickups and role changes.

Focus on:
1. Key injuries and their fantasy impact
2. Role changes and depth chart movements
3. Performance trends and breakout candidates
4. Specific waiver wire recommendations with reasoning
5. Players to consider dropping

Be concise but informative. Use emojis to make it engaging.`

const userPromptTemplate = `Here are today's news items (JSON):

%s

Please:
1. Summarize key takeaways (Injuries, Role Changes, Emerging Players).
2. Suggest 3-5 waiver pickups with reasoning.
3. Mention any players to consider dropping.
4. Output in Markdown format with clear sections.
5. Include the date in the title (use today's date).`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate produces the digest via the OpenAI API. Quota and timeout
// failures fall back to the simple digest; any other failure yields an
// error document rather than an error, so the pipeline always has
// something to write.
func Generate(items []news.Item, apiKey string) string {
	content, err := generateLLM(items, apiKey)
	if err == nil {
		return content
	}

	log.Printf("WARN: Error generating digest with LLM: %v", err)
	errText := strings.ToLower(err.Error())
	if strings.Contains(errText, "quota") || strings.Contains(errText, "429") {
		log.Println("INFO: OpenAI quota exceeded, falling back to simple digest")
		return GenerateSimple(items)
	}
	if strings.Contains(errText, "timeout") || strings.Contains(errText, "deadline") {
		log.Printf("INFO: LLM request timed out after %v, falling back to simple digest", llmTimeout)
		return GenerateSimple(items)
	}

	return fmt.Sprintf("# Error Generating Digest\n\nThere was an error generating the digest: %v\n", err)
}

// generateLLM performs the chat completions call.
func generateLLM(items []news.Item, apiKey string) (string, error) {
	newsJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode news items: %w", err)
	}

	reqBody := chatRequest{
		Model: openAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, newsJSON)},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), llmTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if chat.Error != nil {
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, chat.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return chat.Choices[0].Message.Content, nil
}
