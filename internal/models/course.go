package models

// Course is a read-only listing sourced from the remote catalog. The core
// never mutates a course, it only adds or removes whole values from the
// favourites list.
type Course struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	AuthorNames string   `json:"author_name"`
	CoverId     int      `json:"cover_i,omitempty"`
	Year        int      `json:"year,omitempty"`
	Subjects    []string `json:"subject,omitempty"`
}
