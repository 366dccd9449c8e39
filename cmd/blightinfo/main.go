// Command blightinfo loads a BMP or TGA file and prints its decoded
// dimensions, pixel format, and file-variant metadata.
//
// Usage:
//
//	blightinfo <input>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TraceMyers/Blight"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blightinfo <input>\n")
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "blightinfo: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	dir, file := filepath.Split(path)
	img, err := blight.Load(dir, file, blight.Infer, blight.Options{LocalPath: true})
	if err != nil {
		return err
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", img.Width, img.Height)
	fmt.Printf("Pixel tag:  %s\n", img.Pixels.Tag())
	fmt.Printf("Alpha:      %v\n", img.Alpha)

	switch info := img.FileInfo.(type) {
	case *blight.BitmapInfo:
		fmt.Printf("Format:     BMP (%s)\n", info.Variant)
		fmt.Printf("Compression: %s\n", info.Compression)
		fmt.Printf("Depth:      %d\n", info.Depth)
	case *blight.TgaInfo:
		fmt.Printf("Format:     TGA (%s)\n", info.FileType)
		fmt.Printf("Image type: %d\n", info.Header.ImageType)
		fmt.Printf("Depth:      %d\n", info.Header.ImageSpec.Depth)
	}
	return nil
}
