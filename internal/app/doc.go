// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that loads contraptions,
// traces them and reports the results, decoupled from any specific
// entrypoint like a CLI.
package app
