package request_models

type CreateCategoryRequest struct {
	Province string `json:"province" binding:"required"`
	// Counties is a single whitespace-delimited string, as entered on the
	// admin form ("Dublin Wicklow Wexford").
	Counties string `json:"counties"`
}
