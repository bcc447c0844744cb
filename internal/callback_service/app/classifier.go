package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Bourse-numerique-d-afrique/momo-gateway/internal/callback_service/domain"
)

// ErrNoVariant is returned (wrapped in a ParseError) when a JSON object
// matches none of the known callback shapes.
var ErrNoVariant = errors.New("no known callback shape matches the body")

// ParseError reports a body that could not be classified. The original bytes
// are kept so the caller can log them for operator inspection.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("classify callback: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// The provider sends callbacks without any type tag, so classification is
// structural: each rule names the fields a shape must carry (and the JSON
// kind of the discriminating ones), the status literals it accepts, and
// fields that must be missing. Rules are tried in order and the first match
// decodes the body. Order matters: more specific shapes come before shapes
// that are a subset of their fields, otherwise an invoice callback would
// classify as a payment and a remittance transfer as a disbursement.

type fieldKind int

const (
	fieldAny fieldKind = iota
	fieldString
	fieldObject
)

type fieldRule struct {
	name string
	kind fieldKind
}

type variantRule struct {
	kind     domain.CallbackKind
	required []fieldRule
	status   []string
	absent   []string
	decode   func([]byte) (domain.CallbackVariant, error)
}

func decodeAs[T domain.CallbackVariant](body []byte) (domain.CallbackVariant, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func rawKindOf(raw json.RawMessage) fieldKind {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return fieldAny
	}
	switch trimmed[0] {
	case '"':
		return fieldString
	case '{':
		return fieldObject
	default:
		return fieldAny
	}
}

func (r variantRule) matches(fields map[string]json.RawMessage) bool {
	for _, f := range r.required {
		raw, ok := fields[f.name]
		if !ok {
			return false
		}
		if f.kind != fieldAny && rawKindOf(raw) != f.kind {
			return false
		}
	}
	for _, name := range r.absent {
		if _, ok := fields[name]; ok {
			return false
		}
	}
	var status string
	if err := json.Unmarshal(fields["status"], &status); err != nil {
		return false
	}
	for _, s := range r.status {
		if status == s {
			return true
		}
	}
	return false
}

var cashTransferFields = []fieldRule{
	{name: "financialTransactionId"},
	{name: "reason", kind: fieldString},
	{name: "amount"},
	{name: "currency"},
	{name: "payee", kind: fieldObject},
	{name: "externalId"},
	{name: "originatingCountry"},
	{name: "originalAmount"},
	{name: "originalCurrency"},
	{name: "payerMessage"},
	{name: "payeeNote"},
	{name: "payerIdentificationType"},
	{name: "payerIdentificationNumber"},
	{name: "payerIdentity"},
	{name: "payerFirstName"},
	{name: "payerSurname"},
	{name: "payerLanguageCode"},
	{name: "payerEmail"},
	{name: "payerMsisdn"},
	{name: "payerGender", kind: fieldString},
}

var remittanceTransferFields = []fieldRule{
	{name: "financialTransactionId"},
	{name: "reason", kind: fieldString},
	{name: "amount"},
	{name: "currency"},
	{name: "payee", kind: fieldObject},
	{name: "externalId"},
	{name: "originatingCountry"},
	{name: "originalAmount"},
	{name: "originalCurrency"},
	{name: "payerMessage"},
	{name: "payeeNote", kind: fieldString},
}

var disbursementSuccessFields = []fieldRule{
	{name: "financialTransactionId"},
	{name: "externalId"},
	{name: "amount"},
	{name: "currency", kind: fieldString},
	{name: "payee", kind: fieldObject},
}

var disbursementFailureFields = append(
	append([]fieldRule{}, disbursementSuccessFields...),
	fieldRule{name: "reason", kind: fieldObject},
)

func disbursementRules(success, failure domain.CallbackKind, decodeSuccess, decodeFailure func([]byte) (domain.CallbackVariant, error)) []variantRule {
	return []variantRule{
		{
			kind:     failure,
			required: disbursementFailureFields,
			status:   []string{"FAILED"},
			absent:   []string{"originatingCountry"},
			decode:   decodeFailure,
		},
		{
			kind:     success,
			required: disbursementSuccessFields,
			status:   []string{"SUCCESSFUL"},
			absent:   []string{"originatingCountry"},
			decode:   decodeSuccess,
		},
	}
}

var variantRules = buildVariantRules()

func buildVariantRules() []variantRule {
	rules := []variantRule{
		{
			kind: domain.KindRequestToPayFailed,
			required: []fieldRule{
				{name: "externalId"},
				{name: "amount"},
				{name: "currency", kind: fieldString},
				{name: "payer", kind: fieldObject},
				{name: "reason", kind: fieldString},
			},
			status: []string{"FAILED"},
			decode: decodeAs[domain.RequestToPayFailed],
		},
		{
			kind: domain.KindRequestToPaySucceeded,
			required: []fieldRule{
				{name: "financialTransactionId"},
				{name: "externalId"},
				{name: "amount"},
				{name: "currency", kind: fieldString},
				{name: "payer", kind: fieldObject},
			},
			// The provider has been observed sending both spellings.
			status: []string{"SUCCESSFUL", "SUCCESSFULL"},
			decode: decodeAs[domain.RequestToPaySucceeded],
		},
		{
			kind: domain.KindPreApprovalFailed,
			required: []fieldRule{
				{name: "payer", kind: fieldObject},
				{name: "payerCurrency"},
				{name: "expirationDateTime", kind: fieldString},
			},
			status: []string{"FAILED"},
			decode: decodeAs[domain.PreApprovalFailed],
		},
		{
			kind: domain.KindPreApprovalSucceeded,
			required: []fieldRule{
				{name: "payer", kind: fieldObject},
				{name: "payerCurrency"},
				{name: "expirationDateTime", kind: fieldString},
			},
			status: []string{"PENDING", "CREATED", "SUCCESSFUL"},
			decode: decodeAs[domain.PreApprovalSucceeded],
		},
		{
			kind: domain.KindInvoiceFailed,
			required: []fieldRule{
				{name: "referenceId"},
				{name: "externalId"},
				{name: "amount"},
				{name: "currency"},
				{name: "paymentReference"},
				{name: "invoiceId"},
				{name: "expiryDateTime", kind: fieldString},
				{name: "intendedPayer", kind: fieldObject},
				{name: "description", kind: fieldString},
				{name: "errorReason", kind: fieldObject},
			},
			status: []string{"FAILED"},
			decode: decodeAs[domain.InvoiceFailed],
		},
		{
			kind: domain.KindInvoiceSucceeded,
			required: []fieldRule{
				{name: "referenceId"},
				{name: "externalId"},
				{name: "amount"},
				{name: "currency"},
				{name: "paymentReference"},
				{name: "invoiceId"},
				{name: "expiryDateTime", kind: fieldString},
				{name: "intendedPayer", kind: fieldObject},
				{name: "description", kind: fieldString},
			},
			status: []string{"SUCCESSFUL", "PENDING", "CREATED"},
			decode: decodeAs[domain.InvoiceSucceeded],
		},
		{
			kind: domain.KindCashTransferFailed,
			required: append(
				append([]fieldRule{}, cashTransferFields...),
				fieldRule{name: "errorReason", kind: fieldObject},
			),
			status: []string{"FAILED"},
			decode: decodeAs[domain.CashTransferFailed],
		},
		{
			kind:     domain.KindCashTransferSucceeded,
			required: cashTransferFields,
			status:   []string{"SUCCESSFUL", "PENDING"},
			decode:   decodeAs[domain.CashTransferSucceeded],
		},
		{
			kind: domain.KindRemittanceTransferFailed,
			required: append(
				append([]fieldRule{}, remittanceTransferFields...),
				fieldRule{name: "errorReason", kind: fieldObject},
			),
			status: []string{"FAILED"},
			absent: []string{"payerMsisdn"},
			decode: decodeAs[domain.RemittanceTransferFailed],
		},
		{
			kind:     domain.KindRemittanceTransferSucceeded,
			required: remittanceTransferFields,
			status:   []string{"SUCCESSFUL", "PENDING"},
			absent:   []string{"payerMsisdn"},
			decode:   decodeAs[domain.RemittanceTransferSucceeded],
		},
	}

	// The five disbursement operations share one wire shape across both API
	// versions, so a body alone always resolves to the deposit v1 pair. The
	// envelope category tells consumers which operation actually fired.
	rules = append(rules, disbursementRules(domain.KindDepositV1Succeeded, domain.KindDepositV1Failed,
		decodeAs[domain.DepositV1Succeeded], decodeAs[domain.DepositV1Failed])...)
	rules = append(rules, disbursementRules(domain.KindDepositV2Succeeded, domain.KindDepositV2Failed,
		decodeAs[domain.DepositV2Succeeded], decodeAs[domain.DepositV2Failed])...)
	rules = append(rules, disbursementRules(domain.KindRefundV1Succeeded, domain.KindRefundV1Failed,
		decodeAs[domain.RefundV1Succeeded], decodeAs[domain.RefundV1Failed])...)
	rules = append(rules, disbursementRules(domain.KindRefundV2Succeeded, domain.KindRefundV2Failed,
		decodeAs[domain.RefundV2Succeeded], decodeAs[domain.RefundV2Failed])...)
	rules = append(rules, disbursementRules(domain.KindDisbursementTransferSucceeded, domain.KindDisbursementTransferFailed,
		decodeAs[domain.DisbursementTransferSucceeded], decodeAs[domain.DisbursementTransferFailed])...)

	rules = append(rules,
		variantRule{
			kind: domain.KindPaymentFailed,
			required: []fieldRule{
				{name: "referenceId", kind: fieldString},
				{name: "reason", kind: fieldObject},
			},
			status: []string{"FAILED"},
			absent: []string{"invoiceId"},
			decode: decodeAs[domain.PaymentFailed],
		},
		variantRule{
			kind: domain.KindPaymentSucceeded,
			required: []fieldRule{
				{name: "referenceId", kind: fieldString},
			},
			status: []string{"SUCCESSFUL", "CREATED", "PENDING"},
			absent: []string{"invoiceId"},
			decode: decodeAs[domain.PaymentSucceeded],
		},
	)

	return rules
}

// Classify resolves an untagged callback body to its concrete variant. A body
// matching no rule, or failing to decode as the rule's type, yields a
// *ParseError carrying the original bytes.
func Classify(body []byte) (domain.CallbackVariant, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &ParseError{Body: body, Err: err}
	}
	if _, ok := fields["status"]; !ok {
		return nil, &ParseError{Body: body, Err: ErrNoVariant}
	}
	for _, rule := range variantRules {
		if !rule.matches(fields) {
			continue
		}
		variant, err := rule.decode(body)
		if err != nil {
			return nil, &ParseError{Body: body, Err: err}
		}
		return variant, nil
	}
	return nil, &ParseError{Body: body, Err: ErrNoVariant}
}
