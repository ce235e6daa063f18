// Package phone provides a small net/http component that applies the phone
// display mask on the server: it reformats a raw value, optionally applying
// the Backspace aid first, and reports whether the result is a complete
// number.
//
// The handler responds to GET, HEAD and POST. GET reads the value and key
// from query parameters; POST accepts either a form body or a JSON object
// {"value": "...", "key": "..."}. Responses use the {"data": {...}} envelope
// used by every formwidgets JSON endpoint.
package phone
