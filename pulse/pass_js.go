//go:build js

package pulse

// End finishes the pass. The browser reports validation errors
// asynchronously, so there is nothing to return here.
func (p renderPass) End() error {
	p.pass.End()
	return nil
}
