package layout

import "github.com/xuri/excelize/v2"

const (
	headerFillColor    = "366092"
	subheaderFillColor = "B4C6E7"
	headerFontColor    = "FFFFFF"
)

// Styles holds the style ids registered on a workbook.
type Styles struct {
	Title         int
	SectionHeader int
	Header        int
	Identity      int
	Score         int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
}

// NewStyles registers the report styles on f.
func NewStyles(f *excelize.File) (*Styles, error) {
	defs := []*excelize.Style{
		{
			Font: &excelize.Font{Bold: true, Size: 14},
		},
		{
			Fill:      solidFill(subheaderFillColor),
			Font:      &excelize.Font{Bold: true, Size: 10},
			Alignment: centered(),
		},
		{
			Fill:      solidFill(headerFillColor),
			Font:      &excelize.Font{Bold: true, Size: 11, Color: headerFontColor},
			Alignment: centered(),
			Border:    thinBorder(),
		},
		{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
			Border:    thinBorder(),
		},
		{
			Alignment: centered(),
			Border:    thinBorder(),
		},
	}

	s := &Styles{}
	ids := []*int{&s.Title, &s.SectionHeader, &s.Header, &s.Identity, &s.Score}
	for i, d := range defs {
		id, err := f.NewStyle(d)
		if err != nil {
			return nil, err
		}
		*ids[i] = id
	}
	return s, nil
}
