// Package histprice looks up historical year-end prices through Gemini with
// Google Search grounding. Past Dec-31 closes are not served by the live
// quote endpoint, so the net-worth reconstruction sources them here, once
// per year, and the caller persists the result.
package histprice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ycwei/folio"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `You are a financial data assistant. When asked for
historical year-end prices you use Google Search to find the official closing
price of each security on the last trading day of the requested year, and the
USD/TWD and JPY/TWD exchange rates on that day. You answer with a single JSON
object and nothing else, no markdown fences, in the exact shape:
{"prices": {"<symbol>": <close>, ...}, "exchangeRate": <usd-twd>, "jpyExchangeRate": <jpy-twd>}
Symbols in your answer must match the symbols of the question exactly. Omit a
symbol entirely if you cannot find a reliable close for it.`

// Service holds one grounded chat with the model.
type Service struct {
	chat *genai.Chat
}

// NewService creates the backing client and starts the chat. The client
// reads its API key from the environment.
func NewService(ctx context.Context) (*Service, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini's client: %w", err)
	}
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, err
	}
	return &Service{chat: chat}, nil
}

// YearEnd asks for the Dec-31 snapshot of the given year covering every
// given security. Missing symbols are simply absent from the result; the
// caller's merge decides whether the snapshot is usable.
func (s *Service) YearEnd(ctx context.Context, year int, keys []folio.SecurityKey) (folio.YearSnapshot, error) {
	symbols := make([]string, 0, len(keys))
	for _, key := range keys {
		symbols = append(symbols, key.Market.Symbol(key.Ticker))
	}
	question := fmt.Sprintf(
		"Year-end closing prices for %d, for these securities: %s.",
		year, strings.Join(symbols, ", "))

	resp, err := s.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return folio.YearSnapshot{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return folio.YearSnapshot{}, fmt.Errorf("no response for year %d", year)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return parseSnapshot(text.String())
}

// parseSnapshot decodes the model's answer, tolerating a markdown fence
// around the JSON object.
func parseSnapshot(text string) (folio.YearSnapshot, error) {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '{'); i > 0 {
		text = text[i:]
	}
	if i := strings.LastIndexByte(text, '}'); i >= 0 {
		text = text[:i+1]
	}

	var raw struct {
		Prices          map[string]float64 `json:"prices"`
		ExchangeRate    float64            `json:"exchangeRate"`
		JPYExchangeRate float64            `json:"jpyExchangeRate"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return folio.YearSnapshot{}, fmt.Errorf("unparseable answer %q: %w", text, err)
	}
	return folio.YearSnapshot{
		Prices:          raw.Prices,
		ExchangeRate:    raw.ExchangeRate,
		JPYExchangeRate: raw.JPYExchangeRate,
	}, nil
}
