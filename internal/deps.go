package internal

import (
	"therapyhq/practice-api/internal/service"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"
)

// Deps carries the collaborators every handler needs. The mailer and store
// are interfaces so tests can swap in doubles.
type Deps struct {
	Store    store.Store
	Argon    *security.ArgonHash
	Mailer   service.Mailer
	Uploader *service.MediaUploader
}
