package domain

// Record is anything held in a reconciled list: it has a unique identifier
// and an owning user.
type Record interface {
	RecordID() string
	OwnerID() UserID
}
