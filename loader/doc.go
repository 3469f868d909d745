// Package loader fetches and decodes images from files, HTTP URLs and data
// URIs.
//
// Loads run in the background and are exposed as a Future that can be
// waited on with a context or cancelled:
//
//	f := loader.New().Start(ctx, "https://example.com/tile.png")
//	img, err := f.Wait(ctx)
//
// Content is sniffed before decoding, so a file extension or a server's
// Content-Type never decides the format. PNG, JPEG, GIF, BMP, TIFF and
// WebP are supported.
package loader
