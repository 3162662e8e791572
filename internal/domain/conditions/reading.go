package conditions

// Reading is a snapshot of measured or simulated ocean and weather
// conditions for one spot at one point in time. Heights are feet, periods
// seconds, temperature Celsius. Values are trusted to be finite and
// non-negative; validation belongs to the acquisition side.
type Reading struct {
	WaveHeight     float64 `json:"waveHeight"`
	WavePeriod     float64 `json:"wavePeriod"`
	WaveDirection  string  `json:"waveDirection"`
	WindSpeed      float64 `json:"windSpeed"`
	WindDirection  string  `json:"windDirection"`
	Temperature    float64 `json:"temperature"`
	TideHeight     float64 `json:"tideHeight"`
	SwellHeight    float64 `json:"swellHeight"`
	SwellPeriod    float64 `json:"swellPeriod"`
	SwellDirection string  `json:"swellDirection"`
}

// Entry pairs a spot with its current reading for ranking. ID is carried
// through unchanged so callers can join results back to their catalog
// without relying on names being unique.
type Entry struct {
	ID      string
	Name    string
	Reading Reading
}

// RankedEntry is one row of a ranking, ordered best first.
type RankedEntry struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Reading Reading `json:"reading"`
	Score   float64 `json:"score"`
}
