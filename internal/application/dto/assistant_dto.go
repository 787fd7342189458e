package dto

// ChatRequest entrada de POST /api/assistant/chat.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse respuesta del asistente (pass-through del LLM).
type ChatResponse struct {
	Reply string `json:"reply"`
}

// BusinessContext resumen del estado del negocio que se adjunta al prompt
// del asistente. Se serializa a JSON dentro del system prompt.
type BusinessContext struct {
	TotalRevenue   string `json:"total_revenue"`
	SalesCount     int    `json:"sales_count"`
	ProductsCount  int    `json:"products_count"`
	CustomersCount int    `json:"customers_count"`
	LowStockCount  int    `json:"low_stock_count"`
}
