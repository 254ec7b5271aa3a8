package object

import (
	"github.com/rs/zerolog/log"
)

// Equal compares two expressions structurally. Atoms are equal when their
// values match; pairs are equal when their first and rest fields are equal,
// recursively. A handle that fails to resolve is logged and compares unequal.
func (a *Arena) Equal(x, y Handle) bool {
	return a.equal(x, y, map[[2]Handle]bool{})
}

func (a *Arena) equal(x, y Handle, active map[[2]Handle]bool) bool {
	for {
		if x == y && !x.IsZero() {
			if _, err := a.Resolve(x); err != nil {
				log.Warn().Err(err).Str("call", "Equal").Msg("failed to resolve handle")
				return false
			}
			return true
		}
		nx, err := a.Resolve(x)
		if err != nil {
			log.Warn().Err(err).Str("call", "Equal").Msg("failed to resolve handle")
			return false
		}
		ny, err := a.Resolve(y)
		if err != nil {
			log.Warn().Err(err).Str("call", "Equal").Msg("failed to resolve handle")
			return false
		}
		if nx.pair != ny.pair {
			return false
		}
		if !nx.pair {
			return nx.atom.Equals(ny.atom)
		}
		// Pairs already under comparison are assumed equal, which lets
		// circular structures terminate.
		key := [2]Handle{x, y}
		if active[key] {
			return true
		}
		active[key] = true
		if !a.equal(nx.first, ny.first, active) {
			return false
		}
		x, y = nx.rest, ny.rest
	}
}
