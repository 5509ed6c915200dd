package failsafecb

// CBConfig carries the validated thresholds a failsafe breaker is
// built from. Rate thresholding is time based; success thresholding is
// ratio based over a capacity window.
type CBConfig struct {
	CBName                        string
	FailureRateThreshold          int
	FailureExecutionThreshold     int
	FailureThresholdingPeriodInMS int
	SuccessRatioThreshold         int
	SuccessThresholdingCapacity   int
	WithDelayInMS                 int
}
