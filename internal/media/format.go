package media

import (
	"strconv"
	"strings"
)

// Format describes a derived rendition of an uploaded asset.
type Format struct {
	Width   int
	Height  int
	Crop    string
	Gravity string
}

// DefaultFormat is the rendition served when a caller asks for an image URL
// without parameters.
var DefaultFormat = Format{Width: 250, Height: 250, Crop: "fill"}

var cropModes = map[string]bool{
	"fill": true, "fit": true, "limit": true, "mfit": true, "lfill": true,
	"pad": true, "lpad": true, "mpad": true, "crop": true, "thumb": true, "scale": true,
}

var gravities = map[string]bool{
	"": true, "center": true, "north": true, "south": true, "east": true, "west": true,
	"north_east": true, "north_west": true, "south_east": true, "south_west": true,
	"face": true, "faces": true, "auto": true,
}

// Validate reports the first problem with f, or "" when f is usable.
func (f Format) Validate() string {
	if f.Width < 0 || f.Height < 0 {
		return "width and height must not be negative"
	}
	if f.Width > 4000 || f.Height > 4000 {
		return "width and height must not exceed 4000"
	}
	if f.Crop != "" && !cropModes[f.Crop] {
		return "unsupported crop mode: " + f.Crop
	}
	if !gravities[f.Gravity] {
		return "unsupported gravity: " + f.Gravity
	}
	return ""
}

// Transformation renders f in the provider's URL transformation syntax,
// components ordered alphabetically, zero values omitted.
func (f Format) Transformation() string {
	parts := make([]string, 0, 4)
	if f.Crop != "" {
		parts = append(parts, "c_"+f.Crop)
	}
	if f.Gravity != "" {
		parts = append(parts, "g_"+f.Gravity)
	}
	if f.Height > 0 {
		parts = append(parts, "h_"+strconv.Itoa(f.Height))
	}
	if f.Width > 0 {
		parts = append(parts, "w_"+strconv.Itoa(f.Width))
	}
	return strings.Join(parts, ",")
}
