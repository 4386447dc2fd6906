package bidsv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	bidsv1 "github.com/floroz/bid-manager/pkg/rpc/bids/v1"
)

func TestStatusFromName(t *testing.T) {
	tests := []struct {
		name string
		want bidsv1.BidStatus
	}{
		{name: "PENDING", want: bidsv1.BidStatus_BID_STATUS_PENDING},
		{name: "ACCEPTED", want: bidsv1.BidStatus_BID_STATUS_ACCEPTED},
		{name: "REJECTED", want: bidsv1.BidStatus_BID_STATUS_REJECTED},
		{name: "accepted", want: bidsv1.BidStatus_BID_STATUS_UNSPECIFIED},
		{name: "", want: bidsv1.BidStatus_BID_STATUS_UNSPECIFIED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bidsv1.StatusFromName(tt.name)
			assert.Equal(t, tt.want, got)
			if tt.want != bidsv1.BidStatus_BID_STATUS_UNSPECIFIED {
				assert.Equal(t, tt.name, got.Name())
			}
		})
	}
}
