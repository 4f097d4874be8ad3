package dto

type LocationResponse struct {
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	// builtin or catalog
	Source string `json:"source"`
}

type ListLocationResponse struct {
	Locations []LocationResponse `json:"locations"`
}

type TransportModeResponse struct {
	Mode       string  `json:"mode"`
	Class      string  `json:"class"`
	KgPerTonKm float64 `json:"kg_per_ton_km"`
}

type ListTransportModeResponse struct {
	Modes []TransportModeResponse `json:"modes"`
}
