package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// apiResponse is the domain-level envelope the login and registration
// endpoints use for coded failures. It travels with HTTP 200: the failure
// is structured data for the client, not an HTTP-layer error. Codes are
// stable (-3001 not found, -3002 bad password, -6001 registration failed).
type apiResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
