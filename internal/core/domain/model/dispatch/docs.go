// Package dispatch models dispatch orders: the transactional record linking a
// matched harvest lot, the buyer offer that claimed it, and a driver, with
// snapshot economics (agreed price, transport cost, derived write-once
// platform fee) and the monotonic in_transit/delivered/failed lifecycle.
package dispatch
