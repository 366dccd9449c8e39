package blight_test

import (
	"errors"
	"fmt"

	"github.com/TraceMyers/Blight"
)

func Example() {
	img, err := blight.Load("/photos", "tile.bmp", blight.Infer, blight.Options{})
	if err != nil {
		var berr *blight.Error
		if errors.As(err, &berr) {
			fmt.Printf("blight: %s failed: %s\n", berr.Op, berr.Kind)
		}
		return
	}
	fmt.Println(img.Width, img.Height, img.Pixels.Tag())
}
