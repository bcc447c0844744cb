package domain

// Reason carries the provider's structured failure detail. Codes are
// free-form on the wire; known values include PAYER_NOT_FOUND,
// PAYEE_NOT_ALLOWED_TO_RECEIVE, NOT_ALLOWED, NOT_ALLOWED_TARGET_ENVIRONMENT,
// INVALID_CALLBACK_URL_HOST, INVALID_CURRENCY, SERVICE_UNAVAILABLE,
// INTERNAL_PROCESSING_ERROR, NOT_ENOUGH_FUNDS, PAYER_LIMIT_REACHED,
// PAYEE_NOT_FOUND, PAYER_NOT_ALLOWED_TO_RECEIVE, TRANSACTION_CANCELED,
// RESOURCE_NOT_FOUND, APPROVAL_REJECTED, EXPIRED, TRANSACTION_NOT_COMPLETED
// and RESOURCE_ALREADY_EXIST. New codes appear without notice, so no
// validation is applied here.
type Reason struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
