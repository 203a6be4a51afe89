package responses

// LoginResult is the subset of the lesson API login response this service
// consumes. The token is opaque: it is stored and attached to requests,
// never inspected.
type LoginResult struct {
	AccessToken string `json:"access_token"`
}
