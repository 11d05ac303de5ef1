package gadsdomain

// ErrorResponse representa a estrutura de erro da API do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Google Ads
type ErrorDetails struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []interface{} `json:"details,omitempty"`
}

// IsTokenExpired verifica se o erro é de credencial expirada. O status
// UNAUTHENTICATED (HTTP 401) indica access token inválido ou vencido.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == 401
}

// IsRetryable verifica se o erro é transitório (limite de requisições ou
// indisponibilidade do serviço)
func (e *ErrorResponse) IsRetryable() bool {
	return e.Error.Status == "RESOURCE_EXHAUSTED" || e.Error.Status == "UNAVAILABLE"
}
