package v1

// BasePath is the root of the lookup API. Lookup URLs are meant to be typed
// and pasted, so there is no /api/v1 prefix.
const BasePath = "/"
