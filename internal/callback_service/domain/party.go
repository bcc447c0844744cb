package domain

// PartyIDType identifies how a party is addressed.
type PartyIDType string

const (
	PartyIDTypeMSISDN    PartyIDType = "MSISDN"
	PartyIDTypeEmail     PartyIDType = "EMAIL"
	PartyIDTypePartyCode PartyIDType = "PARTY_CODE"
)

// Party is a payer or payee on a transaction.
type Party struct {
	PartyIDType PartyIDType `json:"partyIdType"`
	PartyID     string      `json:"partyId"`
}
