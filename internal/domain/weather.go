package domain

// Weather is the normalized current-weather record for a city. Temperatures
// are in Celsius, rounded to one decimal place by the weather data client.
// Derived per-request and never persisted.
type Weather struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	MinTemp     float64 `json:"minTemp"`
	MaxTemp     float64 `json:"maxTemp"`

	// Humidity is a percentage in the range 0-100.
	Humidity int `json:"humidity"`

	// Main is the short condition code (e.g. "Clouds").
	Main string `json:"main"`

	// Description is the human-readable condition text.
	Description string `json:"description"`
}
