package request

// ByIDRequest is a common struct for endpoints keyed by a numeric ID path
// parameter. The persisted schema uses serial integer primary keys.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// Validate performs custom validation for ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// ByUUIDRequest is used by endpoints whose resources are keyed by a UUID
// (field photos are addressed by the token generated at upload time).
type ByUUIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate performs custom validation for ByUUIDRequest.
func (r *ByUUIDRequest) Validate() error {
	return nil
}
