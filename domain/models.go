package domain

// FetchResult describes the outcome of fetching a single image URL.
type FetchResult struct {
	URL         string
	Filename    string
	Path        string
	ContentType string
	Size        int64
	Duplicate   bool
}

// Summary aggregates the results of one run.
type Summary struct {
	Attempted    int
	Succeeded    int
	Duplicates   int
	UniqueImages int
}
