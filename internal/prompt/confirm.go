package prompt

import "context"

// Confirmer asks through a Driver; AutoYes answers every question with yes
type Confirmer struct {
	Driver  Driver
	AutoYes bool
}

func (c Confirmer) Confirm(ctx context.Context, message string) (bool, error) {
	if c.AutoYes {
		return true, nil
	}
	return c.Driver.Confirm(ctx, ConfirmConfig{Message: message})
}
