package momo

// ErrorReason is the structured failure detail on provider status results.
type ErrorReason struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TokenResponse is returned by the per-product token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// OAuth2TokenResponse is returned by the oauth2 token endpoint used for
// consumer-consented flows.
type OAuth2TokenResponse struct {
	AccessToken           string `json:"access_token"`
	TokenType             string `json:"token_type"`
	ExpiresIn             int    `json:"expires_in"`
	Scope                 string `json:"scope"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiredIn int    `json:"refresh_token_expired_in"`
}

// BCAuthorizeResponse is returned by bc-authorize and feeds the oauth2 token
// request.
type BCAuthorizeResponse struct {
	AuthReqID string `json:"auth_req_id"`
	Interval  int    `json:"interval"`
	ExpiresIn int    `json:"expires_in"`
}

// RequestToPayResult is the status of a request-to-pay or
// request-to-withdraw.
type RequestToPayResult struct {
	Amount                 string       `json:"amount"`
	Currency               string       `json:"currency"`
	FinancialTransactionID string       `json:"financialTransactionId,omitempty"`
	ExternalID             string       `json:"externalId"`
	Payer                  Party        `json:"payer"`
	PayerMessage           string       `json:"payerMessage,omitempty"`
	PayeeNote              string       `json:"payeeNote,omitempty"`
	Status                 string       `json:"status"`
	Reason                 *ErrorReason `json:"reason,omitempty"`
}

// TransferResult is the status of a deposit, transfer or remittance
// transfer.
type TransferResult struct {
	Amount                 string       `json:"amount"`
	Currency               string       `json:"currency"`
	FinancialTransactionID string       `json:"financialTransactionId,omitempty"`
	ExternalID             string       `json:"externalId"`
	Payee                  Party        `json:"payee"`
	PayerMessage           string       `json:"payerMessage,omitempty"`
	PayeeNote              string       `json:"payeeNote,omitempty"`
	Status                 string       `json:"status"`
	Reason                 *ErrorReason `json:"reason,omitempty"`
}

// RefundResult is the status of a refund.
type RefundResult struct {
	Amount                 string       `json:"amount"`
	Currency               string       `json:"currency"`
	FinancialTransactionID string       `json:"financialTransactionId,omitempty"`
	ExternalID             string       `json:"externalId"`
	Payee                  Party        `json:"payee"`
	PayerMessage           string       `json:"payerMessage,omitempty"`
	PayeeNote              string       `json:"payeeNote,omitempty"`
	Status                 string       `json:"status"`
	Reason                 *ErrorReason `json:"reason,omitempty"`
}

// InvoiceResult is the status of an invoice.
type InvoiceResult struct {
	ReferenceID      string       `json:"referenceId"`
	ExternalID       string       `json:"externalId"`
	Amount           string       `json:"amount"`
	Currency         string       `json:"currency"`
	Status           string       `json:"status"`
	PaymentReference string       `json:"paymentReference,omitempty"`
	InvoiceID        string       `json:"invoiceId,omitempty"`
	ExpiryDateTime   string       `json:"expiryDateTime,omitempty"`
	IntendedPayer    Party        `json:"intendedPayer"`
	Description      string       `json:"description,omitempty"`
	ErrorReason      *ErrorReason `json:"errorReason,omitempty"`
}

// PaymentResult is the status of a payment.
type PaymentResult struct {
	ReferenceID            string       `json:"referenceId"`
	Status                 string       `json:"status"`
	FinancialTransactionID string       `json:"financialTransactionId,omitempty"`
	Reason                 *ErrorReason `json:"reason,omitempty"`
}

// PreApprovalResult is the status of a pre-approval.
type PreApprovalResult struct {
	Payer              Party        `json:"payer"`
	PayerCurrency      string       `json:"payerCurrency"`
	PayerMessage       string       `json:"payerMessage,omitempty"`
	Status             string       `json:"status"`
	ExpirationDateTime string       `json:"expirationDateTime,omitempty"`
	Reason             *ErrorReason `json:"reason,omitempty"`
}

// CashTransferResult is the status of a remittance cash transfer.
type CashTransferResult struct {
	FinancialTransactionID    string       `json:"financialTransactionId,omitempty"`
	Status                    string       `json:"status"`
	Amount                    string       `json:"amount"`
	Currency                  string       `json:"currency"`
	Payee                     Party        `json:"payee"`
	ExternalID                string       `json:"externalId"`
	OriginatingCountry        string       `json:"originatingCountry,omitempty"`
	OriginalAmount            string       `json:"originalAmount,omitempty"`
	OriginalCurrency          string       `json:"originalCurrency,omitempty"`
	PayerMessage              string       `json:"payerMessage,omitempty"`
	PayeeNote                 string       `json:"payeeNote,omitempty"`
	PayerIdentificationType   string       `json:"payerIdentificationType,omitempty"`
	PayerIdentificationNumber string       `json:"payerIdentificationNumber,omitempty"`
	PayerIdentity             string       `json:"payerIdentity,omitempty"`
	PayerFirstName            string       `json:"payerFirstName,omitempty"`
	PayerSurname              string       `json:"payerSurname,omitempty"`
	PayerLanguageCode         string       `json:"payerLanguageCode,omitempty"`
	PayerEmail                string       `json:"payerEmail,omitempty"`
	PayerMsisdn               string       `json:"payerMsisdn,omitempty"`
	PayerGender               string       `json:"payerGender,omitempty"`
	Reason                    *ErrorReason `json:"reason,omitempty"`
}

// Balance is an account balance for one currency.
type Balance struct {
	AvailableBalance string `json:"availableBalance"`
	Currency         string `json:"currency"`
}

// BasicUserInfo is the KYC profile of an account holder.
type BasicUserInfo struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Birthdate  string `json:"birthdate,omitempty"`
	Locale     string `json:"locale,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Status     string `json:"status,omitempty"`
}

// ApiUser describes a provisioned sandbox API user.
type ApiUser struct {
	ProviderCallbackHost string `json:"providerCallbackHost"`
	TargetEnvironment    string `json:"targetEnvironment"`
}

// ApiUserKeyResult carries a freshly generated API key.
type ApiUserKeyResult struct {
	APIKey string `json:"apiKey"`
}
