package email

import "fmt"

// ProviderError carries the upstream provider's response through to the API
// surface. Its text is shown verbatim so an operator can see what the
// provider rejected.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}
