package usecase

import (
	"fmt"
	"regexp"

	"github.com/polkiloo/usersapi/internal/config"
)

// Rules is the immutable policy shared by validation and pagination.
type Rules struct {
	LoginPattern *regexp.Regexp
	MinPageSize  int
	MaxPageSize  int
}

// NewRules compiles configured policy once at startup.
func NewRules(cfg *config.Config) (Rules, error) {
	pattern, err := regexp.Compile(cfg.LoginPattern)
	if err != nil {
		return Rules{}, fmt.Errorf("compile login pattern: %w", err)
	}
	return Rules{
		LoginPattern: pattern,
		MinPageSize:  cfg.MinPageSize,
		MaxPageSize:  cfg.MaxPageSize,
	}, nil
}
