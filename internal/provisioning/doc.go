// Package provisioning owns the end-to-end workflow: create the server,
// wait for it to boot, follow installation progress, verify readiness, and
// clean up when anything fails after the server started billing.
//
// The workflow is a strictly sequential pipeline of phases sharing one
// Context; there is no parallelism and no shared mutable state beyond the
// single in-flight instance record. Phase implementations live in the
// subpackages:
//
//   - compute/: server creation and boot-status wait
//   - install/: installation progress stream
//   - verify/: SSH reachability and service health
//   - destroy/: teardown for the destroy command
package provisioning
