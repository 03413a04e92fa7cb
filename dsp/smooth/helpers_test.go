package smooth

import "github.com/cwbudde/algo-smooth/dsp/window"

func newTestTable() *window.Table {
	return &window.Table{}
}
