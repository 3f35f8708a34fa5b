package reports

import (
	"gorm.io/gorm"
)

// Dimension is a categorical grouping axis for ranking, as opposed to
// the time buckets of AggregateByBucket.
type Dimension string

const (
	DimensionCategory    Dimension = "category"
	DimensionSubcategory Dimension = "subcategory"
)

// rankLimit is the number of entries a ranking is capped at.
const rankLimit = 5

// RankByDimension sums the amounts of all expenses matching the query,
// grouped by category or subcategory, and returns the top entries by
// total, descending. Ties are broken by name, ascending, so that
// rankings are deterministic.
//
// Expenses without a value for the dimension and expenses whose
// reference does not resolve to a live row are dropped by the inner
// join: a dangling reference loses its entry rather than producing one
// without a name.
func RankByDimension(q *gorm.DB, dimension Dimension) ([]BucketTotal, error) {
	refColumn := "expenses.category_id"
	table := "categories"
	if dimension == DimensionSubcategory {
		refColumn = "expenses.subcategory_id"
		table = "subcategories"
	}

	ranked := make([]BucketTotal, 0, rankLimit)
	err := q.
		Joins("JOIN "+table+" ON "+table+".id = "+refColumn+" AND "+table+".deleted_at IS NULL").
		Select(table + ".name AS name, SUM(expenses.amount) AS total").
		Group(refColumn).
		Order("total DESC, name ASC").
		Limit(rankLimit).
		Scan(&ranked).Error
	if err != nil {
		return nil, err
	}

	return ranked, nil
}
