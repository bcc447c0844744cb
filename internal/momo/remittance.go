package momo

import (
	"context"
	"net/http"
	"net/url"
)

// Remittance is the API surface of the remittance product.
type Remittance struct {
	*productClient
}

// Remittance binds the client to the remittance product.
func (c *Client) Remittance(subscriptionKey string) *Remittance {
	return &Remittance{c.newProductClient("remittance", subscriptionKey)}
}

// CashTransfer sends a remittance with full sender identity details.
func (r *Remittance) CashTransfer(ctx context.Context, referenceID string, req CashTransferRequest) (string, error) {
	return r.createResource(ctx, "v2_0/cashtransfer", "remittance_cash_transfer", "REMITTANCE_CASH_TRANSFER", referenceID, req)
}

// CashTransferStatus polls a cash transfer by its reference id.
func (r *Remittance) CashTransferStatus(ctx context.Context, referenceID string) (CashTransferResult, error) {
	var out CashTransferResult
	err := r.do(ctx, http.MethodGet, "v2_0/cashtransfer/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}

// Transfer sends a remittance to a payee.
func (r *Remittance) Transfer(ctx context.Context, referenceID string, req Transfer) (string, error) {
	return r.createResource(ctx, "v1_0/transfer", "remittance_transfer", "REMITTANCE_TRANSFER", referenceID, req)
}

// TransferStatus polls a remittance transfer by its reference id.
func (r *Remittance) TransferStatus(ctx context.Context, referenceID string) (TransferResult, error) {
	var out TransferResult
	err := r.do(ctx, http.MethodGet, "v1_0/transfer/"+url.PathEscape(referenceID), nil, nil, &out)
	return out, err
}
