package response_models

// CourseSummary is one row of the report listing.
type CourseSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Province    string   `json:"province,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`

	LastUpdatedBy string `json:"last_updated_by"`
	ImageCount    int    `json:"image_count"`
}

// CourseReport is the full listing plus the course count surfaced to
// admin-aware views.
type CourseReport struct {
	Courses     []CourseSummary `json:"courses"`
	CourseCount int64           `json:"course_count"`
}

// CourseImage is a display-ready gallery entry. CourseID identifies the
// owning course so the view can render its delete control.
type CourseImage struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	URL      string `json:"url"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// CourseDetail composes everything the course page needs. Category is nil
// when the reference is unset or dangling; Weather is nil whenever the
// snapshot could not be fetched.
type CourseDetail struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`

	LastUpdatedBy string `json:"last_updated_by"`

	Category        *CategoryResponse  `json:"category,omitempty"`
	CurrentProvince string             `json:"current_province,omitempty"`
	Categories      []CategoryResponse `json:"categories"`

	Images  []CourseImage  `json:"images"`
	Weather *WeatherReport `json:"weather,omitempty"`
}
