package db_models

type Destination struct {
	BaseModel
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ImageURL    string `json:"image_url"`
	IsTrending  bool   `json:"is_trending"`

	Hotels     []Hotel    `json:"-"`
	Activities []Activity `json:"-"`
	Reviews    []Review   `json:"-"`
}
