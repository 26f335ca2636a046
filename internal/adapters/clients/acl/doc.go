// Package acl is the anti-corruption layer between the quote API and the domain.
//
// Every call goes through one request pipeline ([Send]) that composes the URL from
// the configured origin, serializes JSON bodies, sends the request through the
// instrumented transport and classifies the outcome into exactly one of the
// domain request errors:
//
//   - URL composition failure → [domain.InvalidURLError]
//   - body serialization failure → [domain.JSONParsingError] (nothing is sent)
//   - no response, cancellation or open circuit → [domain.NetworkError]
//   - status outside 200-299 → [domain.HTTPError]
//   - empty 2xx body → [domain.NoDataError]
//   - body that does not match the expected shape → [domain.DecodingError]
//
// The quote API's JSON representation (quoteDTO and friends) never leaves this package.
// [QuoteClient] layers the named operations on top of the pipeline, adding input
// validation, the random pick, the search post-filter and the submission rules
// (409 → [domain.ConflictError], unreadable acknowledgements count as success).
package acl
