package chain

import (
	"fmt"
	"math/rand"

	"chaindial/internal/config"
	"chaindial/internal/endpoint"
)

// Build prepares one stage of a chain: optionally shuffles the relays, then
// truncates to hopLimit when hopLimit > 0. The input is never mutated.
// Negative hop limits are rejected by the config loader before this runs.
func Build(relays []endpoint.Endpoint, randomize bool, hopLimit int) []endpoint.Endpoint {
	out := make([]endpoint.Endpoint, len(relays))
	copy(out, relays)
	if randomize {
		rand.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	if hopLimit > 0 && hopLimit < len(out) {
		out = out[:hopLimit]
	}
	return out
}

// FromConfig assembles the final relay sequence from the configured stages,
// applying Build per stage and concatenating entry, middle, exit in that
// order. A configuration naming no relays at all yields the Direct chain.
func FromConfig(cfg config.Chain) (*Chain, error) {
	var relays []endpoint.Endpoint
	for _, stage := range cfg.Stages() {
		eps := make([]endpoint.Endpoint, 0, len(stage.Relays))
		for _, raw := range stage.Relays {
			ep, err := endpoint.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("chain: %w", err)
			}
			eps = append(eps, ep)
		}
		relays = append(relays, Build(eps, stage.Randomize, stage.HopLimit)...)
	}
	if len(relays) == 0 {
		return Direct(), nil
	}
	return New(relays...)
}
