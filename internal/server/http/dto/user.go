package dto

import (
	"encoding/xml"

	"github.com/google/uuid"

	"github.com/polkiloo/usersapi/internal/domain/model"
)

// CreateUserRequest describes POST /api/users payload. Every field is optional on the wire.
type CreateUserRequest struct {
	Login     *string `json:"login"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// Model converts request into domain input.
func (r CreateUserRequest) Model() model.NewUser {
	return model.NewUser{Login: r.Login, FirstName: r.FirstName, LastName: r.LastName}
}

// PatchOperationRequest is a single element of the PATCH document.
type PatchOperationRequest struct {
	Op    string  `json:"op"`
	Path  string  `json:"path"`
	Value *string `json:"value"`
}

// PatchOperations converts request document into domain operations.
func PatchOperations(req []PatchOperationRequest) []model.PatchOperation {
	ops := make([]model.PatchOperation, 0, len(req))
	for _, r := range req {
		ops = append(ops, model.PatchOperation{Op: r.Op, Path: r.Path, Value: r.Value})
	}
	return ops
}

// UserResponse is the externally visible representation of a user.
type UserResponse struct {
	XMLName       xml.Name   `json:"-" xml:"UserDto"`
	ID            uuid.UUID  `json:"id" xml:"Id"`
	Login         string     `json:"login" xml:"Login"`
	FirstName     string     `json:"firstName" xml:"FirstName"`
	LastName      string     `json:"lastName" xml:"LastName"`
	GamesPlayed   int        `json:"gamesPlayed" xml:"GamesPlayed"`
	CurrentGameID *uuid.UUID `json:"currentGameId" xml:"CurrentGameId,omitempty"`
}

// NewUserResponse maps domain user to response DTO.
func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Login:         u.Login,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		GamesPlayed:   u.GamesPlayed,
		CurrentGameID: u.Clone().CurrentGameID,
	}
}

// NewUserResponses maps a page of users preserving order.
func NewUserResponses(users []model.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, NewUserResponse(u))
	}
	return resp
}

// UserListXML wraps a list of users for XML rendering.
type UserListXML struct {
	XMLName xml.Name       `xml:"ArrayOfUserDto"`
	Users   []UserResponse `xml:"UserDto"`
}

// CreatedIDXML is the XML body of a creation response.
type CreatedIDXML struct {
	XMLName xml.Name `xml:"guid"`
	ID      string   `xml:",chardata"`
}
