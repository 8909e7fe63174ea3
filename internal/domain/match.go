package domain

// MatchRelation classifies how a subject relates to an existing record
type MatchRelation string

const (
	// MatchExact means all five normalized key fields are equal
	MatchExact MatchRelation = "exact"

	// MatchVariant means same wine identity but a different vintage
	MatchVariant MatchRelation = "variant"

	// MatchNone means no record in the collection matched
	MatchNone MatchRelation = "none"
)

// MatchResult is the outcome of comparing a subject against a collection.
// Rationale is for UI messaging only, never for logic.
type MatchResult struct {
	Relation      MatchRelation   `json:"relation"`
	MatchedRecord *ExistingRecord `json:"matchedRecord,omitempty"`
	Rationale     string          `json:"rationale"`
}

// ResolveAction is the decision returned for an insertion attempt
type ResolveAction string

const (
	ActionInsert            ResolveAction = "insert"
	ActionIncrementExisting ResolveAction = "incrementExisting"
	ActionReject            ResolveAction = "reject"
)

// InsertionDecision tells the caller what to do with a candidate. The core
// never touches the datastore; the caller applies the decision atomically.
type InsertionDecision struct {
	Action         ResolveAction `json:"action"`
	TargetRecordID string        `json:"targetRecordId,omitempty"`
	NewQuantity    int           `json:"newQuantity,omitempty"`
	Rationale      string        `json:"rationale,omitempty"`
}

// Merge describes one duplicate cluster resolution: the surviving record
// absorbs the quantities of the others, which are to be deleted.
type Merge struct {
	Surviving   ExistingRecord   `json:"surviving"`
	Absorbed    []ExistingRecord `json:"absorbed"`
	NewQuantity int              `json:"newQuantity"`
}

// CleanupResult is the full merge plan for a collection cleanup pass
type CleanupResult struct {
	Merges []Merge `json:"merges"`
}
