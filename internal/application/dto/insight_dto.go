package dto

// InsightDTO tarjeta de insight de negocio para el dashboard.
// El orden del arreglo ES la prioridad de presentación (orden fijo de reglas);
// Priority replica la posición para que el frontend no dependa del orden JSON.
type InsightDTO struct {
	ID          string `json:"id"`       // ej. "low-stock"
	Priority    int    `json:"priority"` // 1 = más importante
	Category    string `json:"category"` // forecast | inventory | sales | onboarding
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"` // ruta de navegación sugerida en la SPA
}
