package main

import "time"

type Post struct {
	ID       int
	Category string
	Title    string
	Content  string
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}
