// Package audit emits structured audit events in RFC5424 syslog format.
//
// Security-relevant operations (logins, permission checks, membership
// lifecycle, role customization, payment state changes) construct an
// Event and pass it to Log. Events go to stdout and, when
// AUDIT_DATABASE_URL is set, to the audit database as well.
package audit
