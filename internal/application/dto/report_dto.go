package dto

// SeedSummary cantidades cargadas por POST /api/seed.
type SeedSummary struct {
	Rows         int `json:"rows"`
	Platforms    int `json:"platforms"`
	Customers    int `json:"customers"`
	Invoices     int `json:"invoices"`
	Transactions int `json:"transactions"`
}

// SeedResponse respuesta de POST /api/seed.
type SeedResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Summary SeedSummary `json:"summary"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}
