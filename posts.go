package main

import (
	"database/sql"
	"errors"
	"strings"
)

var (
	errEmptyField   = errors.New("category, title, and content are required")
	errPostNotFound = errors.New("post not found")
)

func validateFields(category, title, content string) error {
	if strings.TrimSpace(category) == "" ||
		strings.TrimSpace(title) == "" ||
		strings.TrimSpace(content) == "" {
		return errEmptyField
	}
	return nil
}

// listPosts returns every post in storage order. The public board groups
// these by category afterwards, so no ORDER BY is needed here.
func listPosts(db *sql.DB) ([]Post, error) {
	return queryPosts(db, "SELECT id, category, title, content FROM posts")
}

// listPostsOrdered returns every post ordered by (category, id), the order
// the admin listing displays.
func listPostsOrdered(db *sql.DB) ([]Post, error) {
	return queryPosts(db, "SELECT id, category, title, content FROM posts ORDER BY category, id")
}

func queryPosts(db *sql.DB, query string) ([]Post, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Category, &post.Title, &post.Content)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func getPostByID(db *sql.DB, id int) (*Post, error) {
	row := db.QueryRow(`
		SELECT id, category, title, content
		FROM posts
		WHERE id = ?`, id)

	var post Post
	err := row.Scan(&post.ID, &post.Category, &post.Title, &post.Content)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func createPost(db *sql.DB, category, title, content string) (int, error) {
	if err := validateFields(category, title, content); err != nil {
		return 0, err
	}

	result, err := db.Exec(`
		INSERT INTO posts (category, title, content)
		VALUES (?, ?, ?)`, category, title, content)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	return int(id), err
}

func updatePost(db *sql.DB, id int, category, title, content string) error {
	if err := validateFields(category, title, content); err != nil {
		return err
	}

	result, err := db.Exec(`
		UPDATE posts
		SET category = ?, title = ?, content = ?
		WHERE id = ?`, category, title, content, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errPostNotFound
	}

	return nil
}

// deletePost removes the post if present. Deleting an id that does not
// exist is not an error.
func deletePost(db *sql.DB, id int) error {
	_, err := db.Exec("DELETE FROM posts WHERE id = ?", id)
	return err
}
