package ask

import (
	"context"
	"fmt"
)

// Querier asks the user for template variable values.
type Querier struct {
	driver Driver
}

// NewQuerier creates a Querier asking through driver.
func NewQuerier(driver Driver) *Querier {
	return &Querier{driver: driver}
}

// Query asks for the value of variable name and returns the answer verbatim.
func (q *Querier) Query(ctx context.Context, name string) (string, error) {
	return q.driver.Input(ctx, InputConfig{
		Message: QueryMessage(name),
	})
}

// QueryMessage is the question shown for a template variable.
func QueryMessage(name string) string {
	return fmt.Sprintf("Enter value for '%s'", name)
}
