package v1

import (
	"time"

	"github.com/fintrack-app/backend/internal/reports"
)

// timeNow is replaced in tests that need a fixed reference time.
var timeNow = time.Now

// reportRecordLimit is the number of raw records returned alongside a
// report.
const reportRecordLimit = 5

// requestKind discriminates the three shapes a records GET request can
// take. It is resolved once from the query parameters before any
// handler logic runs, so that the precedence between the
// report-triggering parameters is decided in exactly one place.
type requestKind int

const (
	// kindList is a plain paginated listing.
	kindList requestKind = iota
	// kindBucketed is a time-bucketed aggregate report.
	kindBucketed
	// kindDimensional is a top-5 ranking by category or subcategory.
	kindDimensional
)

// recordRequest is the parsed form of a records GET request.
type recordRequest struct {
	kind      requestKind
	dimension reports.Dimension // set for kindDimensional
	buckets   reports.BucketSpec
	window    *reports.Window // date restriction of the base query, nil for none
	page      int
	pageSize  int
}

// resolveRecordRequest decides which kind of response a records GET
// request gets.
//
// Precedence, in order:
//
//  1. A dimension parameter wins over reportType: the response is the
//     dimensional ranking and no bucketed aggregation runs. When both
//     category and subcategory are given, category wins and the
//     subcategory parameter is ignored entirely.
//  2. A recognized reportType yields the bucketed report. Its range
//     override, when the report type has one, replaces the filter
//     window: each report type pins its own natural period instead of
//     trusting the filter parameter sent along with it.
//  3. Everything else, including an unrecognized reportType, falls
//     through to the paginated listing.
func resolveRecordRequest(filter, reportType string, hasCategory, hasSubcategory bool, page, pageSize int) recordRequest {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	request := recordRequest{
		kind:     kindList,
		window:   reports.ResolveWindow(filter, timeNow()),
		page:     page,
		pageSize: pageSize,
	}

	if hasCategory {
		request.kind = kindDimensional
		request.dimension = reports.DimensionCategory
		return request
	}

	if hasSubcategory {
		request.kind = kindDimensional
		request.dimension = reports.DimensionSubcategory
		return request
	}

	if spec, ok := reports.ResolveBuckets(reportType, timeNow()); ok {
		request.kind = kindBucketed
		request.buckets = spec
		if spec.Override != nil {
			request.window = spec.Override
		}
		return request
	}

	return request
}
