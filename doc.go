// Package blight decodes Windows Bitmap (BMP: OS/2 Core, V1, V4, V5) and
// Truevision Targa (TGA V1/V2) raster files into one of four canonical
// in-memory pixel formats: RGBA32, RGB16, R8, R16.
//
// Load is the entry point. It infers the file format from its extension
// or, failing that, from its magic bytes, and delegates to the BMP or TGA
// decoder. JPEG and PNG are recognized for inference purposes only — both
// always fail with FormatDisabled, since this module implements no
// encoder/decoder for either.
//
//	img, err := blight.Load("/photos", "tile.bmp", blight.Infer, blight.Options{})
//	if err != nil {
//		var berr *blight.Error
//		if errors.As(err, &berr) {
//			log.Printf("blight: %s failed: %s", berr.Op, berr.Kind)
//		}
//	}
package blight
