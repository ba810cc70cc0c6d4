package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest       = "error.invalid_request"
	ErrKeyInvalidRequestBody   = "error.invalid_request_body"
	ErrKeyInternalError        = "error.internal_error"
	ErrKeyUnauthorized         = "error.unauthorized"
	ErrKeyAPIKeyRequired       = "error.api_key_required"
	ErrKeyInvalidAPIKey        = "error.invalid_api_key"
	ErrKeyNotFound             = "error.not_found"
	ErrKeyRateLimitExceeded    = "error.rate_limit_exceeded"
	ErrKeyConflict             = "error.conflict"
	ErrKeyTimeout              = "error.timeout"
	ErrKeyServiceUnavailable   = "error.service_unavailable"
	ErrKeyUnknownItem          = "error.unknown_item"
	ErrKeyInvalidQuantity      = "error.invalid_quantity"
	ErrKeyCapacityExceeded     = "error.capacity_exceeded"
	ErrKeyInfeasible           = "error.infeasible"
	ErrKeySolverData           = "error.solver_data"
	ErrKeyClientNameTooLong    = "error.client_name_too_long"
	ErrKeyReceiptNotFound      = "error.receipt_not_found"
	ErrKeyReceiptTokenRequired = "error.receipt_token_required"
	ErrKeyInvalidReceiptToken  = "error.invalid_receipt_token"
	ErrKeyRenderFailed         = "error.render_failed"
)

// Success message translation keys.
const (
	SuccessKeyQuoteCalculated = "success.quote_calculated"
)
