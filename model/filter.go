package model

// Range is an inclusive numeric interval. Min > Max is a valid degenerate
// range that matches nothing.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterCriteria holds the operator's active selections. It is rebuilt on
// every invocation and never persisted. An empty region slice means
// "match no rows", not "match all" — callers that want all regions must
// pass every observed region explicitly.
type FilterCriteria struct {
	ComputeRegions []string
	StorageRegions []string
	CostRange      Range
	CPURange       Range
}
