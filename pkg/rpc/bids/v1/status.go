package bidsv1

import "strings"

const statusPrefix = "BID_STATUS_"

// StatusFromName maps PENDING, ACCEPTED or REJECTED to its enum value.
// Unknown names map to BID_STATUS_UNSPECIFIED.
func StatusFromName(name string) BidStatus {
	return BidStatus(BidStatus_value[statusPrefix+name])
}

// Name returns the status without its enum prefix, e.g. ACCEPTED
func (x BidStatus) Name() string {
	return strings.TrimPrefix(x.String(), statusPrefix)
}
