// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snowball

import (
	"github.com/firnlabs/avalanche/fault"
)

// Parameters - the tunables of a snowball instance
type Parameters struct {
	K            int // sample size per poll
	Alpha        int // votes needed for a successful poll
	BetaVirtuous int // confidence to finalise a virtuous choice
	BetaRogue    int // confidence to finalise a contested choice
}

// DefaultParameters - mainnet values
var DefaultParameters = Parameters{
	K:            20,
	Alpha:        15,
	BetaVirtuous: 15,
	BetaRogue:    20,
}

// Verify - basic sanity of the relationships between the tunables
func (p *Parameters) Verify() error {
	switch {
	case 0 >= p.Alpha:
		return fault.ErrInvalidThreshold
	case p.Alpha <= p.K/2:
		return fault.ErrInvalidThreshold
	case p.K < p.Alpha:
		return fault.ErrInvalidThreshold
	case 0 >= p.BetaVirtuous:
		return fault.ErrInvalidThreshold
	case p.BetaVirtuous > p.BetaRogue:
		return fault.ErrInvalidThreshold
	}
	return nil
}
