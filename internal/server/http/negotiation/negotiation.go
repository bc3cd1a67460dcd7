// Package negotiation selects a response representation from the Accept header
// and builds gin renderers for it.
package negotiation

import (
	"strings"

	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/server/http/dto"
)

// Format is a supported response representation.
type Format int

const (
	JSON Format = iota
	XML
)

const (
	mimeText = "text/plain"
	mimeJSON = "application/json"
	mimeXML  = "application/xml"
	mimeAny  = "*/*"
)

func (f Format) String() string {
	if f == XML {
		return mimeXML
	}
	return mimeJSON
}

// Select picks a format using substring matching in fixed priority order.
func Select(accept string) (Format, error) {
	switch {
	case strings.Contains(accept, mimeText):
		return JSON, domainErrors.ErrNotAcceptable
	case strings.Contains(accept, mimeJSON):
		return JSON, nil
	case strings.Contains(accept, mimeXML):
		return XML, nil
	case strings.TrimSpace(accept) == "", strings.Contains(accept, mimeAny):
		return JSON, nil
	default:
		return JSON, domainErrors.ErrNotAcceptable
	}
}

// SelectOrJSON is Select for endpoints that never reject on Accept.
func SelectOrJSON(accept string) Format {
	format, err := Select(accept)
	if err != nil {
		return JSON
	}
	return format
}

// User renders a single user.
func User(format Format, user dto.UserResponse) render.Render {
	if format == XML {
		return render.XML{Data: user}
	}
	return render.JSON{Data: user}
}

// Users renders a list of users keeping their order.
func Users(format Format, users []dto.UserResponse) render.Render {
	if users == nil {
		users = []dto.UserResponse{}
	}
	if format == XML {
		return render.XML{Data: dto.UserListXML{Users: users}}
	}
	return render.JSON{Data: users}
}

// CreatedID renders the identifier of a freshly created user.
func CreatedID(format Format, id uuid.UUID) render.Render {
	if format == XML {
		return render.XML{Data: dto.CreatedIDXML{ID: id.String()}}
	}
	return render.JSON{Data: id.String()}
}
