package orion

import "fmt"

// Handle panics if err is not nil. Use it at the top of a program
// where there is no way to recover from an error.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(fmt.Errorf("%s: %w", text, err))
	}
}
