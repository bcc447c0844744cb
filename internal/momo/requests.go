package momo

// Party identifies an account holder on a request.
type Party struct {
	PartyIDType string `json:"partyIdType" validate:"required,oneof=MSISDN EMAIL PARTY_CODE"`
	PartyID     string `json:"partyId" validate:"required"`
}

// RequestToPay asks a consumer to approve a payment to the API user.
type RequestToPay struct {
	Amount       string `json:"amount" validate:"required"`
	Currency     string `json:"currency" validate:"required,len=3"`
	ExternalID   string `json:"externalId" validate:"required"`
	Payer        Party  `json:"payer" validate:"required"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// RequestToWithdraw asks a consumer to approve a withdrawal. Same wire shape
// as RequestToPay; the endpoint differs.
type RequestToWithdraw struct {
	Amount       string `json:"amount" validate:"required"`
	Currency     string `json:"currency" validate:"required,len=3"`
	ExternalID   string `json:"externalId" validate:"required"`
	Payer        Party  `json:"payer" validate:"required"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// Transfer moves money from the API user to a payee. Used by disbursement
// deposits and transfers and by remittance transfers.
type Transfer struct {
	Amount       string `json:"amount" validate:"required"`
	Currency     string `json:"currency" validate:"required,len=3"`
	ExternalID   string `json:"externalId" validate:"required"`
	Payee        Party  `json:"payee" validate:"required"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// Refund reverses a previous collection identified by its reference id.
type Refund struct {
	Amount              string `json:"amount" validate:"required"`
	Currency            string `json:"currency" validate:"required,len=3"`
	ExternalID          string `json:"externalId" validate:"required"`
	PayerMessage        string `json:"payerMessage"`
	PayeeNote           string `json:"payeeNote"`
	ReferenceIDToRefund string `json:"referenceIdToRefund" validate:"required,uuid4"`
}

// InvoiceRequest creates an invoice a consumer can settle later.
type InvoiceRequest struct {
	ExternalID       string `json:"externalId" validate:"required"`
	Amount           string `json:"amount" validate:"required"`
	Currency         string `json:"currency" validate:"required,len=3"`
	ValidityDuration string `json:"validityDuration" validate:"required"`
	IntendedPayer    Party  `json:"intendedPayer" validate:"required"`
	Payee            Party  `json:"payee" validate:"required"`
	Description      string `json:"description"`
}

// PreApproval asks a consumer for a standing debit authorization.
type PreApproval struct {
	Payer         Party  `json:"payer" validate:"required"`
	PayerCurrency string `json:"payerCurrency" validate:"required,len=3"`
	PayerMessage  string `json:"payerMessage"`
	ValidityTime  int    `json:"validityTime"`
}

// Money is an amount with its currency, used by the payment endpoint.
type Money struct {
	Amount   string `json:"amount" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// CreatePayment records a payment against a customer reference.
type CreatePayment struct {
	ExternalTransactionID   string `json:"externalTransactionId" validate:"required"`
	Money                   Money  `json:"money" validate:"required"`
	CustomerReference       string `json:"customerReference"`
	ServiceProviderUserName string `json:"serviceProviderUserName"`
	ReceiverMessage         string `json:"receiverMessage"`
	SenderNote              string `json:"senderNote"`
	MaxNumberOfRetries      int    `json:"maxNumberOfRetries,omitempty"`
	IncludeSenderCharges    bool   `json:"includeSenderCharges,omitempty"`
}

// CashTransferRequest sends a remittance to a payee with the sender's
// identity details required by the receiving market.
type CashTransferRequest struct {
	Amount                    string `json:"amount" validate:"required"`
	Currency                  string `json:"currency" validate:"required,len=3"`
	ExternalID                string `json:"externalId" validate:"required"`
	Payee                     Party  `json:"payee" validate:"required"`
	OriginatingCountry        string `json:"originatingCountry" validate:"required"`
	OriginalAmount            string `json:"originalAmount"`
	OriginalCurrency          string `json:"originalCurrency"`
	PayerMessage              string `json:"payerMessage"`
	PayeeNote                 string `json:"payeeNote"`
	PayerIdentificationType   string `json:"payerIdentificationType"`
	PayerIdentificationNumber string `json:"payerIdentificationNumber"`
	PayerIdentity             string `json:"payerIdentity"`
	PayerFirstName            string `json:"payerFirstName" validate:"required"`
	PayerSurname              string `json:"payerSurname" validate:"required"`
	PayerLanguageCode         string `json:"payerLanguageCode"`
	PayerEmail                string `json:"payerEmail"`
	PayerMsisdn               string `json:"payerMsisdn"`
	PayerGender               string `json:"payerGender"`
}

// DeliveryNotification is the message texted to a payer after a request
// completes.
type DeliveryNotification struct {
	NotificationMessage string `json:"notificationMessage" validate:"required,max=160"`
}
