package v1

// BasePath is the URL prefix for all version 1 sandbox routes.
const BasePath = "/api/v1/sandbox"
