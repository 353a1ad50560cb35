//go:build !js

package pulse

func (p renderPass) End() error {
	return p.pass.End()
}
