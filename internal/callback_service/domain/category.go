package domain

// CallbackCategory is the operation token carried in the callback URL path.
// It records which product operation the provider is reporting on, independent
// of the JSON body shape.
type CallbackCategory string

const (
	CategoryRequestToPay           CallbackCategory = "REQUEST_TO_PAY"
	CategoryRequestToWithdrawV1    CallbackCategory = "REQUEST_TO_WITHDRAW_V1"
	CategoryRequestToWithdrawV2    CallbackCategory = "REQUEST_TO_WITHDRAW_V2"
	CategoryInvoice                CallbackCategory = "INVOICE"
	CategoryCollectionPayment      CallbackCategory = "COLLECTION_PAYMENT"
	CategoryCollectionPreApproval  CallbackCategory = "COLLECTION_PRE_APPROVAL"
	CategoryDisbursementDepositV1  CallbackCategory = "DISBURSEMENT_DEPOSIT_V1"
	CategoryDisbursementDepositV2  CallbackCategory = "DISBURSEMENT_DEPOSIT_V2"
	CategoryDisbursementRefundV1   CallbackCategory = "DISBURSEMENT_REFUND_V1"
	CategoryDisbursementRefundV2   CallbackCategory = "DISBURSEMENT_REFUND_V2"
	CategoryDisbursementTransfer   CallbackCategory = "DISBURSEMENT_TRANSFER"
	CategoryRemittanceCashTransfer CallbackCategory = "REMITTANCE_CASH_TRANSFER"
	CategoryRemittanceTransfer     CallbackCategory = "REMITTANCE_TRANSFER"
	CategoryUnknown                CallbackCategory = "UNKNOWN"
)

// CategoryFromPath maps the trailing path segment of a callback URL to its
// category. Matching is exact and case sensitive; anything unrecognized maps
// to CategoryUnknown rather than failing, so the callback is still delivered.
func CategoryFromPath(segment string) CallbackCategory {
	switch segment {
	case "REQUEST_TO_PAY":
		return CategoryRequestToPay
	case "REQUEST_TO_WITHDRAW_V1":
		return CategoryRequestToWithdrawV1
	case "REQUEST_TO_WITHDRAW_V2":
		return CategoryRequestToWithdrawV2
	case "INVOICE":
		return CategoryInvoice
	case "COLLECTION_PAYMENT":
		return CategoryCollectionPayment
	case "COLLECTION_PRE_APPROVAL":
		return CategoryCollectionPreApproval
	case "DISBURSEMENT_DEPOSIT_V1":
		return CategoryDisbursementDepositV1
	case "DISBURSEMENT_DEPOSIT_V2":
		return CategoryDisbursementDepositV2
	case "DISBURSEMENT_REFUND_V1":
		return CategoryDisbursementRefundV1
	case "DISBURSEMENT_REFUND_V2":
		return CategoryDisbursementRefundV2
	case "DISBURSEMENT_TRANSFER":
		return CategoryDisbursementTransfer
	case "REMITTANCE_CASH_TRANSFER":
		return CategoryRemittanceCashTransfer
	case "REMITTANCE_TRANSFER":
		return CategoryRemittanceTransfer
	default:
		return CategoryUnknown
	}
}
