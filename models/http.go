package models

// EnvelopeRequest is the body of envelope create and update calls.
// It carries nothing but the opaque ciphertext: no plaintext field name or
// value ever appears in a payload sent over the network.
type EnvelopeRequest struct {
	Ciphertext Ciphertext `json:"ciphertext"`
}

// EnvelopeResponse wraps a single stored envelope returned by the server.
type EnvelopeResponse struct {
	Item VaultEnvelope `json:"item"`
}

// ListEnvelopesResponse is the bulk read response for the current identity.
type ListEnvelopesResponse struct {
	Items []VaultEnvelope `json:"items"`
}

// ErrorResponse is the uniform error body produced by the HTTP handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}
