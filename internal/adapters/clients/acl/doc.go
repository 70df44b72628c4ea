// Package acl is the anti-corruption layer between upstream trivia
// providers and the domain. Provider DTOs stay unexported here; callers
// only see ports.ExternalQuestion values and domain errors.
//
// Error translation:
//   - circuit open, retries exhausted, transport failures and 5xx -> [domain.ErrUnavailable]
//   - 404 -> [domain.ErrNotFound]
//   - undecodable bodies -> [domain.ErrUnavailable]
//
// Provider-level result codes (for example Open Trivia DB's rate limit
// code) are mapped by the adapter that understands them.
package acl
