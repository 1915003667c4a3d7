package gfont

import (
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
	Bold   font.Face
}

// Basic returns bitmap-font faces, used when no ttf assets are shipped.
func Basic() *Fonts {
	return &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
		Bold:   basicfont.Face7x13,
	}
}

// LoadFonts reads ttf faces from workdir.
func LoadFonts(workdir string) (*Fonts, error) {
	nsd, err := os.ReadFile(workdir + "/NotoSansDisplay-Regular.ttf")
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(nsd)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Normal, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	fonts.Small, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	// for titles
	fonts.Bold, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}
