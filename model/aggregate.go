package model

// RegionStat is a single group of an aggregation result: a region and its
// computed statistic (mean or sum depending on the producing operation).
type RegionStat struct {
	Region string
	Value  float64
}

// HistogramBin is one bucket of a distribution.
type HistogramBin struct {
	Label string
	Low   float64
	High  float64
	Count int
}
