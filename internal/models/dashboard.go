package models

type Card struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DashboardView struct {
	Title      string `json:"title"`
	Welcome    string `json:"welcome"`
	Role       Role   `json:"role"`
	SOSEnabled bool   `json:"sosEnabled"`
	Cards      []Card `json:"cards"`
}
