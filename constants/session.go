package constants

// Session categories for tracked work at the properties. "Other" pairs
// with a free-form custom category on the session itself.
const (
	CategoryCleaning    = "Cleaning"
	CategoryPreparation = "Preparation"
	CategoryMaintenance = "Maintenance"
	CategoryCheckIn     = "Check-in"
	CategoryCheckOut    = "Check-out"
	CategoryOther       = "Other"
)

func SessionCategories() []string {
	return []string{
		CategoryCleaning,
		CategoryPreparation,
		CategoryMaintenance,
		CategoryCheckIn,
		CategoryCheckOut,
		CategoryOther,
	}
}
