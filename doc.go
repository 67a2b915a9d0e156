// Package markup serves stylesheets and HTML pages in canonical form and lets WebSocket
// clients edit stylesheets live. The parsing and serialization live in the css and dom
// packages; this package only wires them to HTTP.
package markup
