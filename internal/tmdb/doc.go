// Package tmdb implements the HTTP client for the remote movie catalog.
//
// The client normalizes every failure into a short generic message
// ("failed to fetch trending movies" and friends) that is safe to show
// to users; transport detail is logged at debug level and deliberately
// discarded from the returned error. Requests are rate limited client
// side and carry a bearer access token when one is configured.
package tmdb
