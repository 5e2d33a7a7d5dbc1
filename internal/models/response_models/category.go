package response_models

type CategoryResponse struct {
	ID            string   `json:"id"`
	Province      string   `json:"province"`
	ValidCounties []string `json:"valid_counties"`
	LastUpdatedBy string   `json:"last_updated_by,omitempty"`
}
