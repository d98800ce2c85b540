package common

// ClientIDPrefix is prepended to every generated project client id so the
// public identifier is recognizable in client-side code.
const ClientIDPrefix = "scindn_"

// TokenLength is the length of project secrets, client ids and signed-link
// tokens (alphanumeric characters).
const TokenLength = 128

// SlugLength is the length of generated filename slugs for stored files.
const SlugLength = 40
