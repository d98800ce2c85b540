// Package models defines server-side data models persisted in the database.
package models

// Project is a registered upload target. The relational store is the system
// of record; the project cache keeps a denormalized copy keyed by secret.
type Project struct {
	// UUID identifies the project and names its bucket directory.
	UUID string
	// OwnerUUID is the account that created the project.
	OwnerUUID string
	// Name is the display name chosen at creation.
	Name string
	// ClientID is the public identifier ("scindn_" prefixed).
	ClientID string
	// Secret is the private high-entropy identifier. Exposed only in the
	// create-project response; afterwards it is only ever received, never sent.
	Secret string
	// JSOrigins is the JSON-encoded list of allowed browser origins,
	// normalized to scheme://host[:port] at creation time.
	JSOrigins string
}
