package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrLeague     = "league"
	AttrFaultClass = "fault_class"
)
