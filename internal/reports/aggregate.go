package reports

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BucketTotal is one entry of a report: a bucket or dimension label and
// the summed amount recorded against it.
type BucketTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// AggregateByBucket sums the amounts of all records matching the query,
// grouped by the spec's date part, and aligns the result to the spec's
// labels. The output always has exactly one entry per label, in label
// order: buckets without any matching record carry a zero total. Chart
// rendering depends on this dense, positionally stable output.
//
// The query must already carry the base restrictions including the
// spec's range override, the column is the qualified date column.
func AggregateByBucket(q *gorm.DB, column string, spec BucketSpec) ([]BucketTotal, error) {
	type groupedSum struct {
		Bucket int
		Total  decimal.Decimal
	}

	expr := spec.Part.expr(column)

	var rows []groupedSum
	err := q.
		Select(fmt.Sprintf("%s AS bucket, SUM(amount) AS total", expr)).
		Group(expr).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// The grouped sum is sparse, only buckets with records appear
	totals := make(map[int]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Bucket] = row.Total
	}

	report := make([]BucketTotal, len(spec.Labels))
	for i, label := range spec.Labels {
		total, ok := totals[spec.Keys[i]]
		if !ok {
			total = decimal.Zero
		}

		report[i] = BucketTotal{Name: label, Total: total}
	}

	return report, nil
}
