package response_models

// WeatherReport is the point-in-time snapshot shown on a located course
// page. Visibility is in kilometres, wind speed in m/s, direction in
// degrees.
type WeatherReport struct {
	Clouds        string  `json:"clouds"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection float64 `json:"wind_direction"`
	Visibility    float64 `json:"visibility"`
	Humidity      int     `json:"humidity"`
}
