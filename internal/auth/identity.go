package auth

// Identity is the resolved caller identity handed to request handlers
// after a token has been verified and the account re-fetched from the
// store. It is built per request and never cached across requests.
type Identity struct {
	ID    uint64
	Email string
	Name  string
}
