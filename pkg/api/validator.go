package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (c ClientCommand) Validate() error {
	switch c.Action {
	case ActionResync, ActionPing:
		return nil
	case "":
		return errors.New("action is required")
	}
	return fmt.Errorf("unknown action %q", c.Action)
}

func (o StreamOptions) Validate() error {
	switch o.Format {
	case FormatJSON, FormatMsgpack:
	default:
		return fmt.Errorf("unsupported format %q", o.Format)
	}
	if o.Every < 1 {
		return errors.New("every must be at least 1")
	}
	return nil
}
