package main

import (
	"database/sql"
	"html/template"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

type Board struct {
	db        *sql.DB
	templates map[string]*template.Template
	router    chi.Router
}

func NewBoard(db *sql.DB) *Board {
	b := &Board{
		db:        db,
		templates: loadTemplates(),
	}
	b.setupRoutes()
	return b
}

func (b *Board) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Get("/", b.Index)
	r.Get("/login", b.Login)
	r.Post("/login", b.Login)

	// Protected routes
	r.Get("/logout", b.requireAuth(b.Logout))
	r.Get("/admin", b.requireAuth(b.Admin))
	r.Post("/admin", b.requireAuth(b.Admin))
	r.Get("/edit/{id}", b.requireAuth(b.Edit))
	r.Post("/edit/{id}", b.requireAuth(b.Edit))
	r.Post("/delete/{id}", b.requireAuth(b.Delete))

	b.router = r
}

func (b *Board) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.router.ServeHTTP(w, r)
}

func main() {
	godotenv.Load()

	initAuth()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "schedule.db"
	}

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initDB(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	if err = seedDB(db); err != nil {
		log.Fatalf("seeding database: %v", err)
	}

	if err = cleanupExpiredSessions(db); err != nil {
		log.Printf("cleaning up expired sessions: %v", err)
	}

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			if err := cleanupExpiredSessions(db); err != nil {
				log.Printf("cleaning up expired sessions: %v", err)
			}
		}
	}()

	board := NewBoard(db)

	log.Println("Server starting on :8080")
	log.Fatal(http.ListenAndServe(":8080", board))
}
