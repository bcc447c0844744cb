package momo

import (
	"context"
	"net/http"
	"net/url"
)

// Disbursement is the API surface of the disbursement product.
type Disbursement struct {
	*productClient
}

// Disbursement binds the client to the disbursement product.
func (c *Client) Disbursement(subscriptionKey string) *Disbursement {
	return &Disbursement{c.newProductClient("disbursement", subscriptionKey)}
}

// DepositV1 moves money to a payee account.
func (d *Disbursement) DepositV1(ctx context.Context, referenceID string, req Transfer) (string, error) {
	return d.createResource(ctx, "v1_0/deposit", "disbursement_deposit_v1", "DISBURSEMENT_DEPOSIT_V1", referenceID, req)
}

// DepositV2 is the v2 deposit endpoint.
func (d *Disbursement) DepositV2(ctx context.Context, referenceID string, req Transfer) (string, error) {
	return d.createResource(ctx, "v2_0/deposit", "disbursement_deposit_v2", "DISBURSEMENT_DEPOSIT_V2", referenceID, req)
}

// DepositStatus polls a deposit by its reference id.
func (d *Disbursement) DepositStatus(ctx context.Context, referenceID string) (TransferResult, error) {
	var out TransferResult
	err := d.do(ctx, http.MethodGet, "v1_0/deposit/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// RefundV1 reverses a collection identified by its reference id.
func (d *Disbursement) RefundV1(ctx context.Context, referenceID string, req Refund) (string, error) {
	return d.createResource(ctx, "v1_0/refund", "disbursement_refund_v1", "DISBURSEMENT_REFUND_V1", referenceID, req)
}

// RefundV2 is the v2 refund endpoint.
func (d *Disbursement) RefundV2(ctx context.Context, referenceID string, req Refund) (string, error) {
	return d.createResource(ctx, "v2_0/refund", "disbursement_refund_v2", "DISBURSEMENT_REFUND_V2", referenceID, req)
}

// RefundStatus polls a refund by its reference id.
func (d *Disbursement) RefundStatus(ctx context.Context, referenceID string) (RefundResult, error) {
	var out RefundResult
	err := d.do(ctx, http.MethodGet, "v1_0/refund/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// Transfer moves money to a payee without a prior collection.
func (d *Disbursement) Transfer(ctx context.Context, referenceID string, req Transfer) (string, error) {
	return d.createResource(ctx, "v1_0/transfer", "disbursement_transfer", "DISBURSEMENT_TRANSFER", referenceID, req)
}

// TransferStatus polls a transfer by its reference id.
func (d *Disbursement) TransferStatus(ctx context.Context, referenceID string) (TransferResult, error) {
	var out TransferResult
	err := d.do(ctx, http.MethodGet, "v1_0/transfer/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}
