package models

// Expense categories offered for records. Category is optional on a record and
// never affects aggregation.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryUtilities     = "Utilities"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryTravel        = "Travel"
	CategoryEducation     = "Education"
	CategoryOther         = "Other"
)

// AllCategories returns all known category labels
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryUtilities,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealth,
		CategoryTravel,
		CategoryEducation,
		CategoryOther,
	}
}

// IsValidCategory checks if a category label is known
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
