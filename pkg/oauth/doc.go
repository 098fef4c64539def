// Package oauth connects music platforms to a user session.
//
// Each session owns a Credentials value holding its pending anti-CSRF states
// and access tokens, keyed by platform. Nothing is kept in process-wide
// globals: a CredentialStore maps session IDs to their Credentials and the
// HTTP layer looks them up per request.
//
//	client := oauth.NewClient("https://aromatone.example",
//		oauth.WithProvider(domain.Spotify, clientID, clientSecret),
//	)
//	url, err := client.AuthCodeURL(domain.Spotify, creds)
//	// ... user consents, provider redirects back with code and state ...
//	_, err = client.Exchange(ctx, domain.Spotify, creds, code, state)
//	profile, err := client.Profile(ctx, domain.Spotify, creds)
package oauth
