package dto

type CreateJobRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	URL         *string `json:"url"`
	Platform    *string `json:"platform"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

type UpdateJobRequest struct {
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}
