// Package handlers – error codes.
//
// Stable, machine-readable codes carried in the `code` field of every error
// envelope. Clients branch on these, not on messages. Generic codes mirror
// HTTP status semantics; the rest name a specific input or operation failure.
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "unknown_type",
//	  "message": "unknown record type: \"grants\""
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeTooLarge         = "payload_too_large"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeInternal         = "internal_error"

	// Search
	ErrCodeQueryTooLong = "query_too_long"
	ErrCodeUnknownType  = "unknown_type"
	ErrCodeInvalidLimit = "invalid_limit"
	ErrCodeSearchFailed = "search_failed"
	ErrCodeListFailed   = "list_failed"

	// Dataset
	ErrCodeInvalidDataset = "invalid_dataset"
	ErrCodeInvalidFlag    = "invalid_flag"
)
