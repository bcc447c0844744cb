package domain

// CallbackKind names the concrete shape a callback body was classified as.
type CallbackKind string

const (
	KindRequestToPaySucceeded         CallbackKind = "REQUEST_TO_PAY_SUCCEEDED"
	KindRequestToPayFailed            CallbackKind = "REQUEST_TO_PAY_FAILED"
	KindPreApprovalSucceeded          CallbackKind = "PRE_APPROVAL_SUCCEEDED"
	KindPreApprovalFailed             CallbackKind = "PRE_APPROVAL_FAILED"
	KindInvoiceSucceeded              CallbackKind = "INVOICE_SUCCEEDED"
	KindInvoiceFailed                 CallbackKind = "INVOICE_FAILED"
	KindPaymentSucceeded              CallbackKind = "PAYMENT_SUCCEEDED"
	KindPaymentFailed                 CallbackKind = "PAYMENT_FAILED"
	KindCashTransferSucceeded         CallbackKind = "CASH_TRANSFER_SUCCEEDED"
	KindCashTransferFailed            CallbackKind = "CASH_TRANSFER_FAILED"
	KindRemittanceTransferSucceeded   CallbackKind = "REMITTANCE_TRANSFER_SUCCEEDED"
	KindRemittanceTransferFailed      CallbackKind = "REMITTANCE_TRANSFER_FAILED"
	KindDepositV1Succeeded            CallbackKind = "DEPOSIT_V1_SUCCEEDED"
	KindDepositV1Failed               CallbackKind = "DEPOSIT_V1_FAILED"
	KindDepositV2Succeeded            CallbackKind = "DEPOSIT_V2_SUCCEEDED"
	KindDepositV2Failed               CallbackKind = "DEPOSIT_V2_FAILED"
	KindRefundV1Succeeded             CallbackKind = "REFUND_V1_SUCCEEDED"
	KindRefundV1Failed                CallbackKind = "REFUND_V1_FAILED"
	KindRefundV2Succeeded             CallbackKind = "REFUND_V2_SUCCEEDED"
	KindRefundV2Failed                CallbackKind = "REFUND_V2_FAILED"
	KindDisbursementTransferSucceeded CallbackKind = "DISBURSEMENT_TRANSFER_SUCCEEDED"
	KindDisbursementTransferFailed    CallbackKind = "DISBURSEMENT_TRANSFER_FAILED"
)

// CallbackVariant is implemented by every classified callback body. The
// concrete type carries the decoded fields; Kind tells consumers which shape
// they hold without a type switch.
type CallbackVariant interface {
	Kind() CallbackKind
	callbackVariant()
}

// RequestToPaySucceeded reports a completed request-to-pay or
// request-to-withdraw on the collection product.
type RequestToPaySucceeded struct {
	FinancialTransactionID string `json:"financialTransactionId"`
	ExternalID             string `json:"externalId"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	Payer                  Party  `json:"payer"`
	PayeeNote              string `json:"payeeNote,omitempty"`
	PayerMessage           string `json:"payerMessage,omitempty"`
	Status                 string `json:"status"`
}

func (RequestToPaySucceeded) Kind() CallbackKind { return KindRequestToPaySucceeded }
func (RequestToPaySucceeded) callbackVariant()   {}

// RequestToPayFailed reports a failed request-to-pay or request-to-withdraw.
// The reason is a bare code string on the wire, not a code/message object.
type RequestToPayFailed struct {
	FinancialTransactionID string `json:"financialTransactionId,omitempty"`
	ExternalID             string `json:"externalId"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	Payer                  Party  `json:"payer"`
	PayeeNote              string `json:"payeeNote,omitempty"`
	PayerMessage           string `json:"payerMessage,omitempty"`
	Status                 string `json:"status"`
	Reason                 string `json:"reason"`
}

func (RequestToPayFailed) Kind() CallbackKind { return KindRequestToPayFailed }
func (RequestToPayFailed) callbackVariant()   {}

// PreApprovalSucceeded reports a pre-approval that was created or accepted.
type PreApprovalSucceeded struct {
	Payer              Party  `json:"payer"`
	PayerCurrency      string `json:"payerCurrency"`
	Status             string `json:"status"`
	ExpirationDateTime string `json:"expirationDateTime"`
}

func (PreApprovalSucceeded) Kind() CallbackKind { return KindPreApprovalSucceeded }
func (PreApprovalSucceeded) callbackVariant()   {}

// PreApprovalFailed reports a rejected or expired pre-approval. The reason
// is a code/message object when present, unlike the bare code string on
// request-to-pay failures.
type PreApprovalFailed struct {
	Payer              Party   `json:"payer"`
	PayerCurrency      string  `json:"payerCurrency"`
	Status             string  `json:"status"`
	ExpirationDateTime string  `json:"expirationDateTime"`
	Reason             *Reason `json:"reason,omitempty"`
}

func (PreApprovalFailed) Kind() CallbackKind { return KindPreApprovalFailed }
func (PreApprovalFailed) callbackVariant()   {}

// InvoiceBody holds the fields shared by both invoice outcomes.
type InvoiceBody struct {
	ReferenceID      string `json:"referenceId"`
	ExternalID       string `json:"externalId"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	PaymentReference string `json:"paymentReference"`
	InvoiceID        string `json:"invoiceId"`
	ExpiryDateTime   string `json:"expiryDateTime"`
	IntendedPayer    Party  `json:"intendedPayer"`
	Description      string `json:"description"`
}

// InvoiceSucceeded reports an invoice that was created, pending or paid.
type InvoiceSucceeded struct {
	InvoiceBody
}

func (InvoiceSucceeded) Kind() CallbackKind { return KindInvoiceSucceeded }
func (InvoiceSucceeded) callbackVariant()   {}

// InvoiceFailed reports an invoice that could not be settled.
type InvoiceFailed struct {
	InvoiceBody
	ErrorReason Reason `json:"errorReason"`
}

func (InvoiceFailed) Kind() CallbackKind { return KindInvoiceFailed }
func (InvoiceFailed) callbackVariant()   {}

// PaymentSucceeded reports a completed collection payment.
type PaymentSucceeded struct {
	ReferenceID            string `json:"referenceId"`
	Status                 string `json:"status"`
	FinancialTransactionID string `json:"financialTransactionId,omitempty"`
}

func (PaymentSucceeded) Kind() CallbackKind { return KindPaymentSucceeded }
func (PaymentSucceeded) callbackVariant()   {}

// PaymentFailed reports a failed collection payment.
type PaymentFailed struct {
	ReferenceID            string `json:"referenceId"`
	Status                 string `json:"status"`
	FinancialTransactionID string `json:"financialTransactionId,omitempty"`
	Reason                 Reason `json:"reason"`
}

func (PaymentFailed) Kind() CallbackKind { return KindPaymentFailed }
func (PaymentFailed) callbackVariant()   {}

// CashTransferBody holds the fields shared by both remittance cash transfer
// outcomes. Cash transfers carry the full sender identity block that plain
// remittance transfers omit.
type CashTransferBody struct {
	FinancialTransactionID    string `json:"financialTransactionId"`
	Status                    string `json:"status"`
	Reason                    string `json:"reason"`
	Amount                    string `json:"amount"`
	Currency                  string `json:"currency"`
	Payee                     Party  `json:"payee"`
	ExternalID                string `json:"externalId"`
	OriginatingCountry        string `json:"originatingCountry"`
	OriginalAmount            string `json:"originalAmount"`
	OriginalCurrency          string `json:"originalCurrency"`
	PayerMessage              string `json:"payerMessage"`
	PayeeNote                 string `json:"payeeNote"`
	PayerIdentificationType   string `json:"payerIdentificationType"`
	PayerIdentificationNumber string `json:"payerIdentificationNumber"`
	PayerIdentity             string `json:"payerIdentity"`
	PayerFirstName            string `json:"payerFirstName"`
	PayerSurname              string `json:"payerSurname"`
	PayerLanguageCode         string `json:"payerLanguageCode"`
	PayerEmail                string `json:"payerEmail"`
	PayerMsisdn               string `json:"payerMsisdn"`
	PayerGender               string `json:"payerGender"`
}

// CashTransferSucceeded reports a completed remittance cash transfer.
type CashTransferSucceeded struct {
	CashTransferBody
}

func (CashTransferSucceeded) Kind() CallbackKind { return KindCashTransferSucceeded }
func (CashTransferSucceeded) callbackVariant()   {}

// CashTransferFailed reports a failed remittance cash transfer.
type CashTransferFailed struct {
	CashTransferBody
	ErrorReason Reason `json:"errorReason"`
}

func (CashTransferFailed) Kind() CallbackKind { return KindCashTransferFailed }
func (CashTransferFailed) callbackVariant()   {}

// RemittanceTransferBody holds the fields shared by both remittance transfer
// outcomes.
type RemittanceTransferBody struct {
	FinancialTransactionID string `json:"financialTransactionId"`
	Status                 string `json:"status"`
	Reason                 string `json:"reason"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	Payee                  Party  `json:"payee"`
	ExternalID             string `json:"externalId"`
	OriginatingCountry     string `json:"originatingCountry"`
	OriginalAmount         string `json:"originalAmount"`
	OriginalCurrency       string `json:"originalCurrency"`
	PayerMessage           string `json:"payerMessage"`
	PayeeNote              string `json:"payeeNote"`
}

// RemittanceTransferSucceeded reports a completed remittance transfer.
type RemittanceTransferSucceeded struct {
	RemittanceTransferBody
}

func (RemittanceTransferSucceeded) Kind() CallbackKind { return KindRemittanceTransferSucceeded }
func (RemittanceTransferSucceeded) callbackVariant()   {}

// RemittanceTransferFailed reports a failed remittance transfer.
type RemittanceTransferFailed struct {
	RemittanceTransferBody
	ErrorReason Reason `json:"errorReason"`
}

func (RemittanceTransferFailed) Kind() CallbackKind { return KindRemittanceTransferFailed }
func (RemittanceTransferFailed) callbackVariant()   {}

// DisbursementBody holds the fields shared by every successful disbursement
// callback. Deposits, refunds and transfers across both API versions report
// the same shape; the URL category distinguishes the operation.
type DisbursementBody struct {
	FinancialTransactionID string `json:"financialTransactionId"`
	ExternalID             string `json:"externalId"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	Payee                  Party  `json:"payee"`
	PayerMessage           string `json:"payerMessage,omitempty"`
	PayeeNote              string `json:"payeeNote,omitempty"`
	Status                 string `json:"status"`
}

// DisbursementFailureBody adds the structured failure reason to the shared
// disbursement fields.
type DisbursementFailureBody struct {
	DisbursementBody
	Reason Reason `json:"reason"`
}

type DepositV1Succeeded struct{ DisbursementBody }

func (DepositV1Succeeded) Kind() CallbackKind { return KindDepositV1Succeeded }
func (DepositV1Succeeded) callbackVariant()   {}

type DepositV1Failed struct{ DisbursementFailureBody }

func (DepositV1Failed) Kind() CallbackKind { return KindDepositV1Failed }
func (DepositV1Failed) callbackVariant()   {}

type DepositV2Succeeded struct{ DisbursementBody }

func (DepositV2Succeeded) Kind() CallbackKind { return KindDepositV2Succeeded }
func (DepositV2Succeeded) callbackVariant()   {}

type DepositV2Failed struct{ DisbursementFailureBody }

func (DepositV2Failed) Kind() CallbackKind { return KindDepositV2Failed }
func (DepositV2Failed) callbackVariant()   {}

type RefundV1Succeeded struct{ DisbursementBody }

func (RefundV1Succeeded) Kind() CallbackKind { return KindRefundV1Succeeded }
func (RefundV1Succeeded) callbackVariant()   {}

type RefundV1Failed struct{ DisbursementFailureBody }

func (RefundV1Failed) Kind() CallbackKind { return KindRefundV1Failed }
func (RefundV1Failed) callbackVariant()   {}

type RefundV2Succeeded struct{ DisbursementBody }

func (RefundV2Succeeded) Kind() CallbackKind { return KindRefundV2Succeeded }
func (RefundV2Succeeded) callbackVariant()   {}

type RefundV2Failed struct{ DisbursementFailureBody }

func (RefundV2Failed) Kind() CallbackKind { return KindRefundV2Failed }
func (RefundV2Failed) callbackVariant()   {}

type DisbursementTransferSucceeded struct{ DisbursementBody }

func (DisbursementTransferSucceeded) Kind() CallbackKind { return KindDisbursementTransferSucceeded }
func (DisbursementTransferSucceeded) callbackVariant()   {}

type DisbursementTransferFailed struct{ DisbursementFailureBody }

func (DisbursementTransferFailed) Kind() CallbackKind { return KindDisbursementTransferFailed }
func (DisbursementTransferFailed) callbackVariant()   {}
