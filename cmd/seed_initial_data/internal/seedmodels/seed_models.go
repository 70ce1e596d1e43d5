package seedmodels

// SeedCategory defines a category and its subcategory names in the JSON seed file.
type SeedCategory struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"subCategories"`
}
