package openlibrary

import "strings"

// AuthorSummary is a single author record from the author search.
type AuthorSummary struct {
	Key       string `json:"key,omitempty"`
	Name      string `json:"name"`
	TopWork   string `json:"top_work,omitempty"`
	WorkCount int    `json:"work_count"`
}

// ID returns the catalog key when present, otherwise the name.
func (a AuthorSummary) ID() string {
	if key := a.AuthorID(); key != "" {
		return key
	}
	return a.Name
}

// AuthorID returns the bare author identifier (e.g. "OL26320A"), stripping
// any "/authors/" prefix. Empty when the record has no key.
func (a AuthorSummary) AuthorID() string {
	key := strings.TrimSpace(a.Key)
	key = strings.TrimPrefix(key, "/authors/")
	return strings.Trim(key, "/")
}

// HasKey reports whether works can be fetched for this author.
func (a AuthorSummary) HasKey() bool {
	return a.AuthorID() != ""
}

// WorksPath returns the catalog path of the author's works list.
func (a AuthorSummary) WorksPath() string {
	return worksPath(a.AuthorID())
}

func worksPath(authorID string) string {
	return "/authors/" + authorID + "/works.json"
}

// WorkSummary is one entry of an author's works list.
// CoverID is zero when the work has no cover.
type WorkSummary struct {
	Title   string `json:"title"`
	CoverID int    `json:"cover_id,omitempty"`
}

// HasCover reports whether the work references a cover image.
func (w WorkSummary) HasCover() bool {
	return w.CoverID > 0
}

// CoverSize selects one of the cover renditions served by the covers API.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

// Valid reports whether s is a known cover size.
func (s CoverSize) Valid() bool {
	switch s {
	case CoverSmall, CoverMedium, CoverLarge:
		return true
	}
	return false
}

// wire formats

type authorSearchResponse struct {
	NumFound int             `json:"numFound"`
	Docs     []AuthorSummary `json:"docs"`
}

type worksResponse struct {
	Size    int `json:"size"`
	Entries []struct {
		Title  string `json:"title"`
		Covers []int  `json:"covers"`
	} `json:"entries"`
}
