// Package lot models harvest lots: discrete quantities of one commodity
// reported as available by a producer, together with the monotonic
// pending/matched/collected lifecycle that makes matching exclusive.
package lot
