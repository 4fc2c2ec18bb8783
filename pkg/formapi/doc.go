// Package formapi exposes the form helpers over HTTP so that pages rendered
// without the page package (or other clients) can share the same masks and
// drafts.
//
// Routes:
//
//	GET    /masks                   list of supported mask kinds
//	GET    /masks/{kind}?value=...  masked value
//	GET    /drafts/{formID}         saved draft, 404 when none
//	PUT    /drafts/{formID}         save a draft from the posted fields
//	DELETE /drafts/{formID}         discard the draft (form submitted)
//	GET    /health/live             liveness probe
//	GET    /health/ready            readiness probe running the configured checks
//
// Draft writes are limited per form id with a token bucket; a client over the
// limit gets 429 with a Retry-After header. Every response carries an
// X-Request-ID header, reused from the request when it is well formed.
package formapi
