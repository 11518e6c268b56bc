// Package app contains the application logic behind the assetpath commands.
// It owns configuration, the logger, the loaded catalog and the resolver, and
// is decoupled from any specific entrypoint like a CLI or server.
package app
