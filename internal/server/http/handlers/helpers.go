package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/server/http/dto"
)

// PaginationHeader carries page metadata on list responses.
const PaginationHeader = "X-Pagination"

var nullBody = []byte("null")

// userID parses the :id path parameter.
func userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// bindBody decodes a required JSON body. Absent, blank and null bodies are malformed.
func bindBody(c *gin.Context, obj any) error {
	body, err := c.GetRawData()
	if err != nil {
		return domainErrors.ErrMalformedRequest
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, nullBody) {
		return domainErrors.ErrMalformedRequest
	}
	if err := binding.JSON.BindBody(body, obj); err != nil {
		return domainErrors.ErrMalformedRequest
	}
	return nil
}

// paginationHeader encodes p without HTML escaping so page links keep a literal '&'.
func paginationHeader(p dto.Pagination) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// queryInt returns integer query value or zero when absent or not a number.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are attached
// to the context so the request logger reports them.
func writeError(c *gin.Context, err error) {
	var validationErr *domainErrors.ValidationError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrMalformedRequest):
		c.Status(http.StatusBadRequest)
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, validationErr.Fields())
	case errors.Is(err, domainErrors.ErrNotAcceptable):
		c.Status(http.StatusNotAcceptable)
	default:
		_ = c.Error(err)
		c.Status(http.StatusInternalServerError)
	}
}
