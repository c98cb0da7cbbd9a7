package main

// categoryOrder is the fixed display precedence for the board's known
// categories. Posts in other categories still display, after these.
var categoryOrder = []string{"전체 일정", "일일 일정", "수업 공지", "팀 구성"}

type categoryGroup struct {
	Category string
	Posts    []Post
}

// groupPosts reshapes a flat post sequence into ordered category groups.
// Known categories come first in the order given, but only when they have
// at least one post. Categories outside the known order follow in the
// order they first appear in the input. Posts keep their relative input
// order within each group.
func groupPosts(posts []Post, order []string) []categoryGroup {
	byCategory := make(map[string][]Post)
	var extras []string

	known := make(map[string]bool, len(order))
	for _, cat := range order {
		known[cat] = true
	}

	for _, post := range posts {
		if _, seen := byCategory[post.Category]; !seen && !known[post.Category] {
			extras = append(extras, post.Category)
		}
		byCategory[post.Category] = append(byCategory[post.Category], post)
	}

	var groups []categoryGroup
	for _, cat := range order {
		if posts := byCategory[cat]; len(posts) > 0 {
			groups = append(groups, categoryGroup{Category: cat, Posts: posts})
		}
	}
	for _, cat := range extras {
		groups = append(groups, categoryGroup{Category: cat, Posts: byCategory[cat]})
	}

	return groups
}
