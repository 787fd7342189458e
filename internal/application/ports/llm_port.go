package ports

import (
	"context"

	"github.com/stokly/insights-api/internal/application/dto"
)

// LLMService puerto de salida del asistente conversacional.
// Cualquier adaptador (OpenAI, Anthropic, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato, no la implementación.
// El asistente es un pass-through: prompt + contexto de negocio entran,
// la respuesta del modelo sale tal cual.
type LLMService interface {
	// Chat envía el prompt del usuario junto con el resumen del estado del
	// negocio y devuelve la respuesta del modelo. El contexto debe llevar un
	// timeout para evitar bloqueos en llamadas externas.
	Chat(ctx context.Context, prompt string, business dto.BusinessContext) (string, error)
}
