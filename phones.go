package naija

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// networkPrefixes maps each carrier to the four-digit blocks allocated to
// it by the national numbering plan.
var networkPrefixes = map[Network][]string{
	NetworkMTN:      {"0803", "0806", "0813", "0816", "0810", "0814", "0903", "0906"},
	NetworkGlo:      {"0805", "0807", "0811", "0815", "0905"},
	NetworkAirtel:   {"0802", "0808", "0812", "0708", "0701", "0902", "0907"},
	NetworkEtisalat: {"0809", "0817", "0818", "0908", "0909"},
}

// PhoneOptions narrows phone number generation. Zero values mean no
// filter.
type PhoneOptions struct {
	Network Network
	// Prefix pins the four-digit carrier block, e.g. "0803". When Network
	// is also set the prefix must belong to that carrier.
	Prefix string
}

// PhoneNumber returns a random eleven-digit mobile number: a carrier
// prefix followed by a seven-digit subscriber part.
func (g *Generator) PhoneNumber(opts *PhoneOptions) (string, error) {
	if opts == nil {
		opts = &PhoneOptions{}
	}
	network, err := ParseNetwork(string(opts.Network))
	if err != nil {
		return "", err
	}
	prefix := strings.TrimSpace(opts.Prefix)

	pool := allNetworkPrefixes()
	if network != "" {
		pool = networkPrefixes[network]
	}
	if prefix != "" {
		if !slices.Contains(pool, prefix) {
			if network != "" {
				return "", errors.Join(ErrInvalidArgument, fmt.Errorf("prefix %q does not belong to %s, expected one of [%s]", prefix, network, strings.Join(pool, ", ")))
			}
			return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown prefix %q, expected one of [%s]", prefix, strings.Join(pool, ", ")))
		}
		pool = []string{prefix}
	}

	return g.pick(pool) + g.phoneDigits.Generate(7), nil
}

// CallingCode returns Nigeria's international dialing code.
func (g *Generator) CallingCode() string {
	return "+234"
}

func allNetworkPrefixes() []string {
	var all []string
	for _, n := range Networks() {
		all = append(all, networkPrefixes[n]...)
	}
	return all
}
