package collector

// Fetcher defines the interface for fetching the player details payload.
type Fetcher interface {
	// FetchUserDetails returns the raw getuserdetails JSON body.
	FetchUserDetails() ([]byte, error)
	Name() string
}
