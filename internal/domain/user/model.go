package user

import (
	"fmt"
	"strings"
)

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID string
	Email  string
}

func (p Principal) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("principal email is required")
	}
	return nil
}
