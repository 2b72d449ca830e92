package models

// HelloResponse is the body of a successful call to the protected hello
// endpoint. It doubles as the end-to-end proof that the two-phase bootstrap
// worked: the client found the backend through the runtime-loaded document
// and its credential passed the gate.
type HelloResponse struct {
	// Message is the greeting returned by the backend.
	Message string `json:"message"`

	// Authenticated reports that the request passed the credential gate.
	// Always true in a 200 response; rejected requests never reach the
	// handler that produces this body.
	Authenticated bool `json:"authenticated"`
}

// ErrorResponse is the body of every non-2xx response produced by the
// server. Detail is a short human-readable reason safe to show to callers;
// it never contains the presented or expected credential.
type ErrorResponse struct {
	// Detail describes why the request was rejected.
	Detail string `json:"detail"`
}
