package collector

import (
	"fmt"
	"time"

	"github.com/Extraversi0n/road-to-brivJ/internal/model"
	"github.com/Extraversi0n/road-to-brivJ/internal/payload"
)

// MockFetcher returns a fixed payload for development and testing.
type MockFetcher struct {
	Payload []byte
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchUserDetails() ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payload, nil
}

// Collector fetches the player payload and extracts the values the progress
// computation needs: chest and gem counts plus the contract-buff aggregate.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect performs the single API call and decodes the inventory state.
// Chest ids in the payload: "1" is silver, "2" is gold. Gems live under
// details.red_rubies. The buff list is discovered by structural scan since
// its location is not fixed.
func (c *Collector) Collect() (*model.Inventory, model.BuffAggregate, error) {
	body, err := c.Fetcher.FetchUserDetails()
	if err != nil {
		return nil, model.BuffAggregate{}, fmt.Errorf("fetch user details: %w", err)
	}

	tree, err := payload.Decode(body)
	if err != nil {
		return nil, model.BuffAggregate{}, fmt.Errorf("%w: decode payload: %v", ErrUpstream, err)
	}

	inv := &model.Inventory{
		Gold:      payload.Int(tree, "details", "chests", "2"),
		Silver:    payload.Int(tree, "details", "chests", "1"),
		Gems:      payload.Int(tree, "details", "red_rubies"),
		FetchedAt: time.Now(),
	}

	return inv, payload.Aggregate(tree), nil
}
