package models

// Orphan event reasons.
const (
	OrphanReasonMetadataWriteFailed = "metadata_write_failed" // remote object exists, metadata insert failed
	OrphanReasonRemoteDeleteFailed  = "remote_delete_failed"  // metadata removed, remote object may remain
)

// OrphanEvent records a store-consistency violation for out-of-band
// reconciliation: a remote object without metadata, or the reverse risk
// after a failed remote deletion.
type OrphanEvent struct {
	EventID   string `json:"event_id"`           // Unique identifier for the event
	Timestamp int64  `json:"timestamp"`          // Unix timestamp (seconds) when the condition was detected
	ObjectID  string `json:"object_id"`          // Remote object id involved
	ImageID   string `json:"image_id,omitempty"` // Metadata record id, when one exists
	Reason    string `json:"reason"`             // One of the OrphanReason constants
}
