package momo

import (
	"context"
	"net/http"
	"net/url"
)

// Collection is the API surface of the collection product.
type Collection struct {
	*productClient
}

// Collection binds the client to the collection product.
func (c *Client) Collection(subscriptionKey string) *Collection {
	return &Collection{c.newProductClient("collection", subscriptionKey)}
}

// RequestToPay asks the payer to approve a payment. The returned reference
// id identifies the transaction in status queries and callbacks.
func (col *Collection) RequestToPay(ctx context.Context, referenceID string, req RequestToPay) (string, error) {
	return col.createResource(ctx, "v1_0/requesttopay", "collection_request_to_pay", "REQUEST_TO_PAY", referenceID, req)
}

// RequestToPayStatus polls a request-to-pay by its reference id.
func (col *Collection) RequestToPayStatus(ctx context.Context, referenceID string) (RequestToPayResult, error) {
	var out RequestToPayResult
	err := col.do(ctx, http.MethodGet, "v1_0/requesttopay/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// RequestToPayDeliveryNotification texts the payer after the request
// completed.
func (col *Collection) RequestToPayDeliveryNotification(ctx context.Context, referenceID string, note DeliveryNotification) error {
	if err := col.c.validate.StructCtx(ctx, note); err != nil {
		return err
	}
	path := "v1_0/requesttopay/" + url.PathEscape(referenceID) + "/deliverynotification"
	headers := map[string]string{"notificationMessage": note.NotificationMessage}
	return col.do(ctx, http.MethodPost, path, headers, note, nil)
}

// RequestToWithdrawV1 asks the payer to approve a withdrawal.
func (col *Collection) RequestToWithdrawV1(ctx context.Context, referenceID string, req RequestToWithdraw) (string, error) {
	return col.createResource(ctx, "v1_0/requesttowithdraw", "collection_request_to_withdraw_v1", "REQUEST_TO_WITHDRAW_V1", referenceID, req)
}

// RequestToWithdrawV2 is the v2 withdrawal endpoint.
func (col *Collection) RequestToWithdrawV2(ctx context.Context, referenceID string, req RequestToWithdraw) (string, error) {
	return col.createResource(ctx, "v2_0/requesttowithdraw", "collection_request_to_withdraw_v2", "REQUEST_TO_WITHDRAW_V2", referenceID, req)
}

// RequestToWithdrawStatus polls a withdrawal by its reference id.
func (col *Collection) RequestToWithdrawStatus(ctx context.Context, referenceID string) (RequestToPayResult, error) {
	var out RequestToPayResult
	err := col.do(ctx, http.MethodGet, "v1_0/requesttowithdraw/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// CreateInvoice issues an invoice the intended payer can settle.
func (col *Collection) CreateInvoice(ctx context.Context, referenceID string, req InvoiceRequest) (string, error) {
	return col.createResource(ctx, "v2_0/invoice", "collection_invoice", "INVOICE", referenceID, req)
}

// InvoiceStatus polls an invoice by its reference id.
func (col *Collection) InvoiceStatus(ctx context.Context, referenceID string) (InvoiceResult, error) {
	var out InvoiceResult
	err := col.do(ctx, http.MethodGet, "v2_0/invoice/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// CancelInvoice withdraws an unpaid invoice.
func (col *Collection) CancelInvoice(ctx context.Context, referenceID, externalID string) error {
	body := map[string]string{"externalId": externalID}
	headers := map[string]string{
		"X-Callback-Url": col.callbackURL("collection_invoice", "INVOICE"),
	}
	return col.do(ctx, http.MethodDelete, "v2_0/invoice/"+url.PathEscape(referenceID), headers, body, nil)
}

// CreatePayment records a payment against a customer reference.
func (col *Collection) CreatePayment(ctx context.Context, referenceID string, req CreatePayment) (string, error) {
	return col.createResource(ctx, "v2_0/payment", "collection_payment", "COLLECTION_PAYMENT", referenceID, req)
}

// PaymentStatus polls a payment by its reference id.
func (col *Collection) PaymentStatus(ctx context.Context, referenceID string) (PaymentResult, error) {
	var out PaymentResult
	err := col.do(ctx, http.MethodGet, "v2_0/payment/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// PreApprove requests a standing debit authorization from the payer.
func (col *Collection) PreApprove(ctx context.Context, referenceID string, req PreApproval) (string, error) {
	return col.createResource(ctx, "v2_0/preapproval", "collection_preapproval", "COLLECTION_PRE_APPROVAL", referenceID, req)
}

// PreApprovalStatus polls a pre-approval by its reference id.
func (col *Collection) PreApprovalStatus(ctx context.Context, referenceID string) (PreApprovalResult, error) {
	var out PreApprovalResult
	err := col.do(ctx, http.MethodGet, "v2_0/preapproval/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}
