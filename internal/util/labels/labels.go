// Package labels defines the label set llamaup stamps on every Hetzner
// Cloud resource it creates, so that destroy and status can tell llamaup's
// resources apart from hand-made ones.
package labels

// Standard label keys.
const (
	// KeyManagedBy identifies the management tool.
	KeyManagedBy = "managed-by"

	// KeyInstance identifies which llamaup instance a resource belongs to.
	KeyInstance = "llamaup.io/instance"
)

// ManagedByLlamaup is the value marking llamaup-managed resources.
const ManagedByLlamaup = "llamaup"

// ForInstance returns the standard label set for resources belonging to the
// named instance.
func ForInstance(name string) map[string]string {
	return map[string]string{
		KeyManagedBy: ManagedByLlamaup,
		KeyInstance:  name,
	}
}

// IsManaged reports whether a resource's labels mark it as created by
// llamaup.
func IsManaged(labels map[string]string) bool {
	return labels[KeyManagedBy] == ManagedByLlamaup
}
