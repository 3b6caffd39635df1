package raindrop

// Reserved collection ids the remote service interprets itself. They are
// valid wherever a collection id is accepted as a filter and must be
// forwarded unmodified.
const (
	// CollectionAll selects every raindrop across all collections.
	CollectionAll = 0
	// CollectionUnsorted selects raindrops not filed into any collection.
	CollectionUnsorted = -1
	// CollectionTrash selects soft-deleted raindrops awaiting permanent
	// deletion.
	CollectionTrash = -99
)

// View modes a collection can be displayed in.
const (
	ViewList    = "list"
	ViewGrid    = "grid"
	ViewMasonry = "masonry"
	ViewSimple  = "simple"
)

// ViewModes lists every view mode the service accepts.
var ViewModes = []string{ViewList, ViewGrid, ViewMasonry, ViewSimple}

// SortModes lists every ordering accepted when listing raindrops. A leading
// "-" means descending.
var SortModes = []string{"-created", "created", "score", "-sort", "title", "-title", "domain", "-domain"}

// ValidView reports whether view is one of ViewModes.
func ValidView(view string) bool {
	for _, v := range ViewModes {
		if view == v {
			return true
		}
	}
	return false
}

// ValidSort reports whether sort is one of SortModes.
func ValidSort(sort string) bool {
	for _, s := range SortModes {
		if sort == s {
			return true
		}
	}
	return false
}

// CollectionRef is the reference shape the service uses to point at a
// collection from another record.
type CollectionRef struct {
	ID int `json:"$id"`
}

// Collection is a folder of raindrops.
type Collection struct {
	ID         int            `json:"_id"`
	Title      string         `json:"title"`
	Count      int            `json:"count"`
	Public     bool           `json:"public"`
	View       string         `json:"view,omitempty"`
	Color      string         `json:"color,omitempty"`
	Cover      []string       `json:"cover,omitempty"`
	Parent     *CollectionRef `json:"parent,omitempty"`
	Expanded   bool           `json:"expanded"`
	Sort       int            `json:"sort,omitempty"`
	Created    string         `json:"created,omitempty"`
	LastUpdate string         `json:"lastUpdate,omitempty"`
}

// Raindrop is a single bookmark.
type Raindrop struct {
	ID         int            `json:"_id"`
	Title      string         `json:"title"`
	Excerpt    string         `json:"excerpt,omitempty"`
	Note       string         `json:"note,omitempty"`
	Link       string         `json:"link"`
	Domain     string         `json:"domain,omitempty"`
	Type       string         `json:"type,omitempty"`
	Cover      string         `json:"cover,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Important  bool           `json:"important"`
	Broken     bool           `json:"broken"`
	Collection *CollectionRef `json:"collection,omitempty"`
	// Sort is the stored position within the collection. The update
	// parameter that sets it is named "order" on the wire.
	Sort       int    `json:"sort,omitempty"`
	Created    string `json:"created,omitempty"`
	LastUpdate string `json:"lastUpdate,omitempty"`
}

// Tag is a tag name together with the number of raindrops carrying it. The
// service serializes the name under "_id".
type Tag struct {
	Name  string `json:"_id"`
	Count int    `json:"count"`
}

// RaindropPage is one page of a raindrop listing. Count is the total number
// of matches, not the page length.
type RaindropPage struct {
	Items []Raindrop `json:"items"`
	Count int        `json:"count"`
}

// BulkResult reports how many records a bulk update touched.
type BulkResult struct {
	Modified int `json:"modified"`
}
