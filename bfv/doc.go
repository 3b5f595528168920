// Package bfv provides a client for the widget API of the Bayerischer
// Fußball-Verband (BFV), the Bavarian football association.
//
// The widget API backs the fixture, table and scorer widgets embedded on
// bfv.de and club websites. It is read-only, unauthenticated and answers
// every request with a common envelope of the form
//
//	{"state": 0, "message": null, "data": {...}}
//
// # Usage
//
// Create a client and call any of the typed endpoint methods:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := bfv.NewClient("", logger,
//		bfv.WithTimeout(30*time.Second),
//		bfv.WithRetries(2, time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	matches, err := client.TeamMatches(ctx, "016PE7FISS000000VV0AG811VTE5EA5R")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Identifiers (team permanent IDs, club IDs, compound competition IDs,
// match IDs) are the opaque 32-character strings used in bfv.de URLs.
//
// # Result strings
//
// The API reports scores as strings such as "2:1", including special
// markers for called-off matches and forfeits. ParseScore and the Score
// methods on Match and MatchReport turn these into numeric scores; see
// ParseScore for the exact rules.
//
// # Caching
//
// GET responses can be cached through the Cache interface via WithCache.
// The fixture data changes at most a few times per week, so even short
// TTLs remove nearly all repeat traffic from interactive use.
//
// # Error handling
//
// Endpoint methods wrap failures with context and return sentinel errors
// (ErrNoData, ErrInvalidResult, ErrInvalidConfig) or an *APIError carrying
// the HTTP status:
//
//	if apiErr, ok := err.(*bfv.APIError); ok && apiErr.IsNotFound() {
//		// unknown id
//	}
package bfv
