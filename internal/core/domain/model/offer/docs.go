// Package offer models standing buyer offers: purchase intents for a set of
// commodities at a stated unit price, toggled active/inactive. Offers are the
// demand side of matching; prices agreed at match time are snapshots, so later
// offer edits never leak into existing dispatch orders.
package offer
