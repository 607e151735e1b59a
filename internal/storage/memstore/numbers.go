package memstore

import "fmt"

// Business numbers in this backend are sequential and zero-padded,
// derived from the same counter as the primary id. The document backend
// uses a different (random-suffix) format; callers may rely only on
// uniqueness, not on the shape.

func caseNumber(year int, id int64) string {
	return fmt.Sprintf("CASE-%d-%03d", year, id)
}

func obNumber(year int, id int64) string {
	return fmt.Sprintf("OB/%d/%04d", year, id)
}

func evidenceNumber(year int, id int64) string {
	return fmt.Sprintf("EV-%d-%04d", year, id)
}

func reportNumber(year int, id int64) string {
	return fmt.Sprintf("RPT-%d-%04d", year, id)
}
