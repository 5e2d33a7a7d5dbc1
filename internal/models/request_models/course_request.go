package request_models

type CreateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Province    string `json:"province"`

	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

type UpdateCourseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Province    string `json:"province"`

	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}
