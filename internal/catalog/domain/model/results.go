package model

// InsertResult mirrors the acknowledgement returned to clients after an insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult reports the effect of a field-merge or increment. A zero
// MatchedCount is a successful no-op, not an error.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// ImportOutcome is the combined result of recording an import and
// decrementing the referenced product's stock.
type ImportOutcome struct {
	ImportResult *InsertResult `json:"importResult"`
	UpdateResult *UpdateResult `json:"updateResult"`
}

// RegistrationOutcome is the result of registering a user. Exactly one of
// Inserted and Existing is meaningful.
type RegistrationOutcome struct {
	Inserted *InsertResult
	Existing bool
}
