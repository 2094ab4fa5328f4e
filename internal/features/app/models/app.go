package models

import "encoding/json"

// Manifest is the TON Connect application descriptor.
type Manifest struct {
	URL              string `json:"url" example:"https://ton-mini-app-backend.onrender.com"`
	Name             string `json:"name" example:"TON Mystery Cases"`
	IconURL          string `json:"iconUrl" example:"https://ton.org/icon.png"`
	TermsOfUseURL    string `json:"termsOfUseUrl" example:"https://ton-mini-app-backend.onrender.com/terms"`
	PrivacyPolicyURL string `json:"privacyPolicyUrl" example:"https://ton-mini-app-backend.onrender.com/privacy"`
}

func NewManifest(appURL, name, iconURL string) Manifest {
	return Manifest{
		URL:              appURL,
		Name:             name,
		IconURL:          iconURL,
		TermsOfUseURL:    appURL + "/terms",
		PrivacyPolicyURL: appURL + "/privacy",
	}
}

type StatusResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"TON Mini App Backend is working!"`
}

// TransactionID is kept raw so any JSON value is echoed back verbatim.
type CheckTransactionRequest struct {
	TransactionID json.RawMessage `json:"transactionId" swaggertype:"string" example:"tx-1"`
}

// CheckTransactionResponse echoes the submitted id, null when absent.
type CheckTransactionResponse struct {
	Success       bool            `json:"success" example:"true"`
	Status        string          `json:"status" example:"completed"`
	TransactionID json.RawMessage `json:"transactionId" swaggertype:"string" example:"tx-1"`
}
