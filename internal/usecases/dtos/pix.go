package dtos

// GeneratePixDTO is the /generate-pix request body. Field names follow the
// public API contract.
type GeneratePixDTO struct {
	CPF      string `json:"cpf"`
	EmailPix string `json:"emailPix"`
	Numero   string `json:"numero"`
}

type PixChargeResponse struct {
	PixCode       string `json:"pixCode"`
	TransactionID string `json:"transactionId"`
}
