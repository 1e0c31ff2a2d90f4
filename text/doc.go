// Package text renders the numeric overlay from a bitmap glyph strip.
//
// The overlay alphabet is fixed: the ten digits and the decimal point.
// Glyphs come from a strip image holding 11 equal-width cells laid out
// left to right in the order "0123456789.".
//
//	strip, err := text.LoadStrip("assets/digits.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := text.NewRenderer(strip, 600, 40)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := r.Render("3.141592653589793")
//
// Strips are BMP files decoded with golang.org/x/image/bmp. The color of the
// strip's top-left pixel is treated as background and becomes transparent,
// so only the glyph ink covers whatever the overlay is composited onto.
//
// GenerateStrip produces a strip from an OpenType font; cmd/mkdigits uses it
// to build the shipped asset.
package text
