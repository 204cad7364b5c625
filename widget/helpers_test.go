package widget

import "matui/material"

func testTheme() material.Theme {
	return material.Default()
}
