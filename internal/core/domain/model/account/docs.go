// Package account models platform identities and their roles. Authentication
// lives outside the core; the aggregate here records trusted identities and
// enforces that an account never changes after creation except through
// admin-driven role escalation.
package account
