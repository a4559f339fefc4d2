package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/coursemate/coursemate/internal/models"
)

// Search queries the catalog and prints the results. With no arguments the
// configured default query is used.
func (a *App) Search(ctx context.Context, args []string) error {
	query := a.config.DefaultQuery
	if len(args) > 0 {
		query = strings.Join(args, " ")
	}

	if err := a.ctrl.FetchCourses(ctx, query); err != nil {
		fmt.Fprintln(a.out, "Search failed:", err)
		return err
	}

	s := a.ctrl.State()
	if len(s.Courses) == 0 {
		fmt.Fprintln(a.out, "No courses found.")
		return nil
	}

	favs := make(map[string]struct{}, len(s.Favourites))
	for _, c := range s.Favourites {
		favs[c.Id] = struct{}{}
	}

	for i, c := range s.Courses {
		marker := " "
		if _, ok := favs[c.Id]; ok {
			marker = "★"
		}
		fmt.Fprintf(a.out, "%3d %s %s\n", i+1, marker, renderCourse(c))
	}
	return nil
}

// Fav toggles the favourite flag on result n of the last search.
func (a *App) Fav(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: fav <n>")
		return nil
	}

	s := a.ctrl.State()
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(s.Courses) {
		fmt.Fprintf(a.out, "No search result number %s.\n", args[0])
		return nil
	}

	course := s.Courses[n-1]
	if err := a.ctrl.ToggleFavourite(ctx, course); err != nil {
		fmt.Fprintln(a.out, "Favourite change failed:", err)
		return err
	}

	if hasCourse(a.ctrl.State().Favourites, course.Id) {
		fmt.Fprintf(a.out, "Added to favourites: %s\n", course.Title)
	} else {
		fmt.Fprintf(a.out, "Removed from favourites: %s\n", course.Title)
	}
	return nil
}

// Favs lists the favourited courses.
func (a *App) Favs(ctx context.Context) error {
	s := a.ctrl.State()
	if len(s.Favourites) == 0 {
		fmt.Fprintln(a.out, "No favourites yet.")
		return nil
	}
	for i, c := range s.Favourites {
		fmt.Fprintf(a.out, "%3d ★ %s\n", i+1, renderCourse(c))
	}
	return nil
}

func hasCourse(list []models.Course, id string) bool {
	for _, c := range list {
		if c.Id == id {
			return true
		}
	}
	return false
}

func renderCourse(c models.Course) string {
	out := c.Title + " - " + c.AuthorNames
	if c.Year != 0 {
		out += " (" + strconv.Itoa(c.Year) + ")"
	}
	if len(c.Subjects) > 0 {
		out += " [" + strings.Join(c.Subjects, ", ") + "]"
	}
	return out
}
