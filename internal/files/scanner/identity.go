package scanner

import (
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// NamespaceGroupIdentity is the fixed UUID namespace for group identities,
// derived from "csvcat/group-identity/v1" under the standard URL namespace.
var NamespaceGroupIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("csvcat/group-identity/v1"))

// GroupID returns a deterministic UUID v5 for a prefix within a directory.
// The same directory and prefix always produce the same ID, so repeated scans
// of an unchanged directory yield identical groups.
//
// The directory is normalized to a cleaned, forward-slash path. Case is
// preserved because prefix matching is case-sensitive.
func GroupID(dir, prefix string) uuid.UUID {
	normalized := path.Clean(filepath.ToSlash(dir))
	return uuid.NewSHA1(NamespaceGroupIdentity, []byte(normalized+"\x00"+prefix))
}
