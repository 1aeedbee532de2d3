package icons

import _ "embed"

//go:embed huddle.png
var appIconPNG []byte

func AppIconPNG() []byte {
	return appIconPNG
}
