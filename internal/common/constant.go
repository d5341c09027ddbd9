package common

// Persisted key-value layout. These two keys are the whole durable state
// of the application.
const (
	// CertificationsKey holds the JSON-encoded certification collection.
	CertificationsKey = "certifications"

	// OwnerLoggedInKey holds the literal string "true" while an owner
	// session is active; the key is absent otherwise.
	OwnerLoggedInKey = "ownerLoggedIn"
)
