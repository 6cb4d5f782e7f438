// Package timezone keeps all wall-clock handling in the configured
// application timezone. The location comes from APP_TIMEZONE (an IANA
// name such as "Asia/Kathmandu") and is resolved when the package is
// imported; anything unresolvable falls back to UTC.
//
// Now, Parse and Format are drop-in replacements for their time package
// counterparts pinned to that location, so audit stamps and date-only
// trip fields stay consistent regardless of the host clock.
package timezone
