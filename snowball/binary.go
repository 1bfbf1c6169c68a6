// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// binary snowball consensus primitives
//
// the three instances form a tower: slush tracks only the latest
// winning choice, snowflake adds a confidence counter finalising after
// beta consecutive wins, snowball adds per choice success totals so
// the preference is the historically strongest choice rather than the
// most recent one
package snowball

import (
	"fmt"
)

// Slush - remember the last successful choice
type Slush struct {
	preference int
}

// NewSlush - start with an initial choice, 0 or 1
func NewSlush(choice int) *Slush {
	return &Slush{preference: choice}
}

// Preference - the current choice
func (s *Slush) Preference() int {
	return s.preference
}

// RecordSuccessfulPoll - adopt the winning choice
func (s *Slush) RecordSuccessfulPoll(choice int) {
	s.preference = choice
}

// String - diagnostic form
func (s *Slush) String() string {
	return fmt.Sprintf("SL(Preference = %d)", s.preference)
}

// Snowflake - slush with a consecutive success counter
type Snowflake struct {
	slush      Slush
	beta       int
	confidence int
	finalized  bool
}

// NewSnowflake - finalise after beta consecutive successful polls
func NewSnowflake(beta int, choice int) *Snowflake {
	return &Snowflake{
		slush: Slush{preference: choice},
		beta:  beta,
	}
}

// Preference - the current choice
func (sf *Snowflake) Preference() int {
	return sf.slush.Preference()
}

// Finalized - true once the decision is irreversible
func (sf *Snowflake) Finalized() bool {
	return sf.finalized
}

// RecordSuccessfulPoll - count consecutive wins for one choice
//
// a win for the other choice restarts the count at one; reaching beta
// finalises and every later poll is ignored
func (sf *Snowflake) RecordSuccessfulPoll(choice int) {
	if sf.finalized {
		return
	}
	if sf.slush.Preference() == choice {
		sf.confidence += 1
	} else {
		sf.confidence = 1
	}
	sf.finalized = sf.confidence >= sf.beta
	sf.slush.RecordSuccessfulPoll(choice)
}

// RecordUnsuccessfulPoll - an inconclusive poll resets confidence
func (sf *Snowflake) RecordUnsuccessfulPoll() {
	if sf.finalized {
		return
	}
	sf.confidence = 0
}

// String - diagnostic form
func (sf *Snowflake) String() string {
	return fmt.Sprintf("SF(Confidence = %d, Finalized = %v, %s)",
		sf.confidence, sf.finalized, sf.slush.String())
}

// Snowball - snowflake with total success counts per choice
type Snowball struct {
	snowflake          Snowflake
	numSuccessfulPolls [2]int
	preference         int
}

// NewSnowball - finalise after beta consecutive successful polls
func NewSnowball(beta int, choice int) *Snowball {
	return &Snowball{
		snowflake:  *NewSnowflake(beta, choice),
		preference: choice,
	}
}

// Preference - the strongest choice so far
//
// once the inner snowflake has finalised its choice is the network's
// decision and overrides the historical totals
func (sb *Snowball) Preference() int {
	if sb.snowflake.Finalized() {
		return sb.snowflake.Preference()
	}
	return sb.preference
}

// Finalized - true once the decision is irreversible
func (sb *Snowball) Finalized() bool {
	return sb.snowflake.Finalized()
}

// RecordSuccessfulPoll - count a win and maybe flip the preference
//
// the preference only moves to a choice that has strictly more total
// wins, so a single flip flop poll cannot unseat an established
// preference
func (sb *Snowball) RecordSuccessfulPoll(choice int) {
	if sb.snowflake.Finalized() {
		return
	}
	sb.numSuccessfulPolls[choice] += 1
	if sb.numSuccessfulPolls[choice] > sb.numSuccessfulPolls[1-choice] {
		sb.preference = choice
	}
	sb.snowflake.RecordSuccessfulPoll(choice)
}

// RecordUnsuccessfulPoll - an inconclusive poll resets confidence
func (sb *Snowball) RecordUnsuccessfulPoll() {
	sb.snowflake.RecordUnsuccessfulPoll()
}

// String - diagnostic form
func (sb *Snowball) String() string {
	return fmt.Sprintf("SB(Preference = %d, NumSuccessfulPolls = %v, %s)",
		sb.preference, sb.numSuccessfulPolls, sb.snowflake.String())
}
