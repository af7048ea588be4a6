// Package maildoc extracts e-mail content from table-formatted documents.
// A document exported as HTML carries recipients, a subject and a message
// body in labeled table rows; maildoc looks those rows up, renders the
// subject and body as Handlebars templates and sanitizes the resulting HTML
// for outbound mail.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, raymond/, drive/).
package maildoc
