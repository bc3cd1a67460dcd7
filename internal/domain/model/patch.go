package model

// PatchOpReplace is the only operation that mutates a user.
const PatchOpReplace = "replace"

// Patchable user fields.
const (
	PatchPathLogin     = "login"
	PatchPathFirstName = "firstName"
	PatchPathLastName  = "lastName"
)

// PatchOperation replaces one named field of a user.
type PatchOperation struct {
	Op    string
	Path  string
	Value *string
}
