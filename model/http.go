package model

type AnalyzeRequestBody struct {
	Notes   []string `json:"notes"`
	Figures []string `json:"figures,omitempty"`
}

type PaletteEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
