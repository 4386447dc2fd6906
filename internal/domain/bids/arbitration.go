package bids

import "bytes"

// IsLeading decides whether candidate supersedes the current top bid.
//
// A higher amount always leads. At equal amounts the earlier bid leads:
// timestamps are compared at the millisecond precision they are stored with,
// and an exact timestamp tie falls back to the time-ordered bid id. The
// incumbent keeps the lead when candidate is not strictly earlier, so a bid
// never displaces itself.
func IsLeading(candidate, top *Bid) bool {
	if top == nil {
		return true
	}
	if candidate.Amount != top.Amount {
		return candidate.Amount > top.Amount
	}

	candidateTime := candidate.TimePlaced.UnixMilli()
	topTime := top.TimePlaced.UnixMilli()
	if candidateTime != topTime {
		return candidateTime < topTime
	}

	return bytes.Compare(candidate.ID[:], top.ID[:]) < 0
}
