package ferry

import "fmt"

// InvalidDirectionError reports an explicitly requested direction key that
// the route does not define. This is the one caller input error that
// surfaces instead of being defaulted away.
type InvalidDirectionError struct {
	RouteID   string
	Requested string
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("route %s has no direction %q", e.RouteID, e.Requested)
}
