// Package middleware holds the fiber middleware in front of the inspector.
//
// rayid tags each request with an X-Ray-ID (reusing the client's when sent)
// and stores it in the request locals for logger.WithRayID. auth checks the
// X-API-Key header or api_key query parameter against the configured key.
//
// The serve command installs rayid first, then request logging, then auth.
package middleware
