package manualcb

// CBConfig carries the validated thresholds a manual breaker is built
// from, mirroring the failsafecb configuration shape.
type CBConfig struct {
	CBName                        string
	FailureRateThreshold          int
	FailureExecutionThreshold     int
	FailureThresholdingPeriodInMS int
	SuccessRatioThreshold         int
	SuccessThresholdingCapacity   int
	WithDelayInMS                 int
}
