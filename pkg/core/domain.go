package core

import "strings"

// Wine is the central entity of the domain.
// It is one normalized catalog row. All fields are free text exactly as
// they appear in the sheet; numeric interpretation happens at filter and
// sort time.
type Wine struct {
	Name    string `json:"name"`
	Vintage string `json:"vintage"`
	Type    string `json:"type"`
	Grape   string `json:"grape"`
	Price   string `json:"price"`
	Region  string `json:"region"`
	Taste   string `json:"taste"`
	Pairing string `json:"pairing"`
	Rating  string `json:"rating"`
	Buy     string `json:"buy"`
	Image   string `json:"image"`
	Extra   string `json:"extra"`
}

// Values returns every field in declaration order.
func (w Wine) Values() []string {
	return []string{
		w.Name, w.Vintage, w.Type, w.Grape, w.Price, w.Region,
		w.Taste, w.Pairing, w.Rating, w.Buy, w.Image, w.Extra,
	}
}

// searchText is the lower-cased, space-joined concatenation of all fields.
func (w Wine) searchText() string {
	return strings.ToLower(strings.Join(w.Values(), " "))
}

// Field returns the value of a sortable field. SortNone yields "".
func (w Wine) Field(f SortField) string {
	switch f {
	case SortName:
		return w.Name
	case SortVintage:
		return w.Vintage
	case SortType:
		return w.Type
	case SortGrape:
		return w.Grape
	case SortPrice:
		return w.Price
	case SortRegion:
		return w.Region
	case SortRating:
		return w.Rating
	case SortBuy:
		return w.Buy
	}
	return ""
}

// Row is one raw spreadsheet row: column header to cell value.
type Row map[string]string
