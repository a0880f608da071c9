package model

type Flags struct {
	// Dataset paths
	ComputePath string
	StoragePath string

	// Region selections, comma separated. Empty means every region
	// observed in the loaded data.
	EC2Regions string
	S3Regions  string

	// Numeric bounds. NaN means "use the observed bound".
	CostMin float64
	CostMax float64
	CPUMin  float64
	CPUMax  float64

	// Presentation
	ShowRaw  bool
	HTMLPath string
}
