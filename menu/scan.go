// Package menu implements the menu extraction engine: a state machine that
// walks a role-tagged token stream and produces normalized beer records.
// The engine performs no I/O; degraded input reduces output cardinality
// instead of failing.
package menu

import (
	beer "github.com/lfe011969/local-beer-app"
)

// entry is a pending beer block accumulated during the scan: the header
// that opened it, the body lines seen so far, and the merged stat fields.
type entry struct {
	header string
	body   []string
	stat   beer.StatLine
	group  string
	budget int
}

// hasStat reports whether the entry's body window produced an ABV value,
// the minimum for the entry to survive.
func (e *entry) hasStat() bool {
	return e.stat.ABV != nil
}

// absorb merges one stat candidate line into the entry. Fields are merged
// first-wins so that a later "IBU 15" line can complete an earlier
// "ABV 5.3%" line without disturbing it.
func (e *entry) absorb(line string) {
	parsed := beer.ParseStatLine(line, "")
	if e.stat.ABV == nil {
		e.stat.ABV = parsed.ABV
	}
	if e.stat.IBU == nil {
		e.stat.IBU = parsed.IBU
	}
	if e.stat.Style == "" {
		e.stat.Style = parsed.Style
	}
	if e.stat.Producer == "" {
		e.stat.Producer = parsed.Producer
	}
}

// scanResult carries the segmented entries plus the count of pending
// entries discarded for want of a stat line.
type scanResult struct {
	entries []entry
	dropped int
}

// scan partitions the token stream into per-beer entries. The group
// detector and entry segmenter share one explicit state value: the current
// tap-group label and the pending entry (nil when between entries).
//
// Transitions: a group-keyword heading updates the current group (other
// headings are ignored); an entry header opens a pending entry; the pending
// entry closes at the next entry header, the next group boundary, the
// lookahead budget, or end of stream. A closed entry without an ABV is
// discarded, not emitted.
func scan(tokens []beer.Token, venue *beer.Venue) scanResult {
	p := &venue.Profile
	group := p.Group()

	var result scanResult
	var pending *entry

	closePending := func() {
		if pending == nil {
			return
		}
		if pending.hasStat() {
			result.entries = append(result.entries, *pending)
		} else {
			result.dropped++
		}
		pending = nil
	}

	for _, tok := range tokens {
		switch tok.Role {
		case beer.RoleHeading:
			if !p.IsGroupHeading(tok.Text) {
				continue // unrelated heading, state unchanged
			}
			closePending()
			group = tok.Text

		case beer.RoleEntryHeader:
			closePending()
			pending = &entry{
				header: tok.Text,
				group:  group,
				budget: p.Lookahead(),
			}

		case beer.RoleStatCandidate, beer.RoleBodyText:
			if pending == nil {
				continue
			}
			if pending.budget <= 0 {
				closePending()
				continue
			}
			pending.budget--
			if tok.Role == beer.RoleStatCandidate {
				pending.absorb(tok.Text)
			} else {
				pending.body = append(pending.body, tok.Text)
			}
		}
	}
	closePending()

	return result
}
