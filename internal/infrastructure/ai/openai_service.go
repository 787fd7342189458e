package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const (
	openAIChatCompletionsURL = "https://api.openai.com/v1/chat/completions"

	assistantSystemPrompt = `Eres un asistente de IA especializado en sistemas ERP, integrado al sistema STOKLY. Tu función es analizar los datos del negocio del usuario y dar respuestas claras, objetivas y accionables. Usa el contexto provisto para responder; el contexto es un resumen del estado actual del negocio.

Contexto del negocio:
%s

Sé directo y usa formato markdown para mejorar la legibilidad (listas, negrita, etc.).`
)

// OpenAIService adaptador que implementa LLMService usando la API REST de
// OpenAI (Chat Completions). Usa net/http de la librería estándar; no
// requiere SDK.
type OpenAIService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIService construye el adaptador. model suele ser "gpt-4o-mini".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además su propio
			// context.WithTimeout
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras del protocolo Chat Completions ────────────────────────────────

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Chat envía el prompt con el contexto de negocio en el system prompt y
// devuelve la respuesta del modelo tal cual (pass-through).
func (s *OpenAIService) Chat(ctx context.Context, prompt string, business dto.BusinessContext) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: AI_OPENAI_API_KEY no configurado")
	}

	contextJSON, err := json.MarshalIndent(business, "", "  ")
	if err != nil {
		return "", fmt.Errorf("AI: serializar contexto: %w", err)
	}

	payload := openAIRequest{
		Model: s.model,
		Messages: []openAIMessage{
			{Role: "system", Content: fmt.Sprintf(assistantSystemPrompt, string(contextJSON))},
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openAIChatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp openAIResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: OpenAI error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: OpenAI HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var chatResp openAIResponse
	if err := json.Unmarshal(rawBody, &chatResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta OpenAI: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}

	return chatResp.Choices[0].Message.Content, nil
}
