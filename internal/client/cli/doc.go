// Package cli provides unictl, the interactive operator console for unigate.
//
// It connects to the gRPC endpoint, prompts for tenant credentials and then
// runs a small REPL for the administrative operations:
//   - login / logout / whoami
//   - provision a student or supervisor account
//   - list and reissue accounts whose credential delivery failed
//   - create a tenant (system administrators only)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
