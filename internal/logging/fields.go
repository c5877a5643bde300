package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldLeague     = "league"
	FieldCycle      = "cycle"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldFaultClass = "fault_class"
)
