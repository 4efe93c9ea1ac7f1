package core

// Identity is the request-scoped result of verifying a bearer token.
//
// It is attached to exactly one in-flight request and discarded when that
// request completes. It is never stored in process-wide state.
type Identity struct {
	AccountID string `json:"accountId"`
	Role      Role   `json:"role"`
}
