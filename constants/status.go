package constants

// ReadinessStatus is the canonical status for rows in profile_readiness.
type ReadinessStatus string

// Stable values (store these exact strings in DB).
const (
	ReadinessIncomplete ReadinessStatus = "INCOMPLETE" // nothing ingested yet
	ReadinessProcessing ReadinessStatus = "PROCESSING" // a job is in flight
	ReadinessPartial    ReadinessStatus = "PARTIAL"    // some fields present, ingestion not finished
	ReadinessComplete   ReadinessStatus = "COMPLETE"   // terminal: skills, experience and user link committed
)

// ReadinessStatuses holds the allowed values for the status field in ProfileReadiness.
var ReadinessStatuses = []string{
	string(ReadinessIncomplete),
	string(ReadinessProcessing),
	string(ReadinessPartial),
	string(ReadinessComplete),
}
