// Package addon emits the behavior/resource pack documents for a compiled
// mob and assembles them into a downloadable .mcaddon archive.
//
// Every emitter is deterministic: the same mob record always produces
// byte-identical documents, which is what lets the two pack manifests
// cross-reference each other reliably.
package addon

import "github.com/google/uuid"

// Identifier namespaces used for manifest UUID derivation.
const (
	nsBehaviorHeader = "bp.header"
	nsBehaviorModule = "bp.module"
	nsResourceHeader = "rp.header"
	nsResourceModule = "rp.module"
)

// DeterministicUUID derives a stable UUIDv5 for a namespace/identifier pair.
// The same pair always resolves to the same value across runs and processes,
// so manifests that reference each other stay consistent.
func DeterministicUUID(namespace, id string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte("ai-minecraft."+namespace+"."+id)).String()
}
