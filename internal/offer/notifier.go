package offer

import (
	"context"
	"log/slog"
)

// Notifier tells the counter-party that an offer changed. from is empty for new offers.
type Notifier interface {
	OfferChanged(ctx context.Context, o *Offer, from Status)
}

// LogNotifier records the notification that would have been sent. Nothing is
// delivered or persisted; real delivery (email/SMS) is not implemented yet.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) OfferChanged(ctx context.Context, o *Offer, from Status) {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}

	recipient := "buyer"
	if from == "" || o.Status == StatusWithdrawn {
		recipient = "seller"
	}

	logger.InfoContext(ctx, "offer notification not delivered",
		"offer_id", o.ID,
		"listing_id", o.ListingID,
		"recipient", recipient,
		"from", from,
		"to", o.Status,
	)
}
