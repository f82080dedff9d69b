// Command seed loads the curated catalog into the database. Safe to run
// repeatedly; rows are upserted by primary key.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"devhub-server/internal/config"
	"devhub-server/internal/infrastructure/database"
	"devhub-server/internal/infrastructure/database/entities"
	"devhub-server/internal/infrastructure/logger"
)

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseDSN,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	upsert := db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true})

	if err := seed(upsert); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().
		Int("search_results", len(searchResults)).
		Int("resources", len(resources)).
		Int("learning_paths", len(learningPaths)).
		Msg("catalog seeded")
}

func seed(db *gorm.DB) error {
	if err := db.Create(&searchResults).Error; err != nil {
		return fmt.Errorf("seed search results: %w", err)
	}
	if err := db.Create(&resources).Error; err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}
	for _, path := range learningPaths {
		if err := db.Create(&path).Error; err != nil {
			return fmt.Errorf("seed learning path %s: %w", path.ID, err)
		}
	}
	return nil
}

var searchResults = []entities.SearchResult{
	{ID: "sr-react-hooks", Title: "React Hooks Guide", Description: "Deep dive into useState, useEffect and custom hooks", URL: "https://react.dev/reference/react/hooks", Category: "frontend"},
	{ID: "sr-go-concurrency", Title: "Go Concurrency Patterns", Description: "Goroutines, channels and the sync package in practice", URL: "https://go.dev/blog/pipelines", Category: "backend"},
	{ID: "sr-docker-basics", Title: "Docker for Developers", Description: "Build, ship and run containers locally", URL: "https://docs.docker.com/get-started/", Category: "devops"},
	{ID: "sr-postgres-indexes", Title: "PostgreSQL Indexing", Description: "How indexes work and when the planner uses them", URL: "https://www.postgresql.org/docs/current/indexes.html", Category: "database"},
	{ID: "sr-css-grid", Title: "CSS Grid Layout", Description: "Two dimensional layouts without framework help", URL: "https://developer.mozilla.org/docs/Web/CSS/CSS_grid_layout", Category: "frontend"},
	{ID: "sr-rest-design", Title: "REST API Design", Description: "Resource naming, status codes and pagination", URL: "https://restfulapi.net/", Category: "backend"},
	{ID: "sr-k8s-intro", Title: "Kubernetes Fundamentals", Description: "Pods, deployments and services explained", URL: "https://kubernetes.io/docs/tutorials/", Category: "devops"},
	{ID: "sr-typescript-generics", Title: "TypeScript Generics", Description: "Writing reusable, type-safe utilities", URL: "https://www.typescriptlang.org/docs/handbook/2/generics.html", Category: "frontend"},
}

var resources = []entities.Resource{
	{ID: "res-mdn", Title: "MDN Web Docs", Description: "Reference for web platform APIs", URL: "https://developer.mozilla.org", Category: "reference"},
	{ID: "res-go-by-example", Title: "Go by Example", Description: "Annotated example programs for Go", URL: "https://gobyexample.com", Category: "tutorial"},
	{ID: "res-roadmap", Title: "Developer Roadmaps", Description: "Community curated learning roadmaps", URL: "https://roadmap.sh", Category: "career"},
	{ID: "res-regex101", Title: "regex101", Description: "Interactive regular expression tester", URL: "https://regex101.com", Category: "tool"},
	{ID: "res-can-i-use", Title: "Can I use", Description: "Browser support tables for frontend features", URL: "https://caniuse.com", Category: "tool"},
}

var learningPaths = []entities.LearningPath{
	{
		ID:          "path-frontend",
		Title:       "Frontend Developer Path",
		Description: "From markup fundamentals to production React applications",
		Skill:       "Frontend",
		Icon:        "🎨",
		Difficulty:  "Beginner",
		Duration:    "12 weeks",
		Steps: []entities.LearningStep{
			{ID: "fe-1", Title: "HTML & CSS Foundations", Description: "Semantic markup, flexbox and grid", StepOrder: 1, Resources: []string{"https://developer.mozilla.org/docs/Learn"}, EstimatedHours: 20},
			{ID: "fe-2", Title: "JavaScript Essentials", Description: "The language, the DOM and fetch", StepOrder: 2, Resources: []string{"https://javascript.info"}, EstimatedHours: 30},
			{ID: "fe-3", Title: "React", Description: "Components, hooks and state management", StepOrder: 3, Resources: []string{"https://react.dev/learn"}, EstimatedHours: 40},
			{ID: "fe-4", Title: "Build & Deploy", Description: "Bundlers, CI and hosting", StepOrder: 4, Resources: []string{"https://vitejs.dev/guide/"}, EstimatedHours: 15},
		},
	},
	{
		ID:          "path-backend",
		Title:       "Backend Developer Path",
		Description: "Server-side engineering with Go and PostgreSQL",
		Skill:       "Backend",
		Icon:        "⚙️",
		Difficulty:  "Intermediate",
		Duration:    "10 weeks",
		Steps: []entities.LearningStep{
			{ID: "be-1", Title: "Go Fundamentals", Description: "Syntax, interfaces and error handling", StepOrder: 1, Resources: []string{"https://go.dev/tour"}, EstimatedHours: 25},
			{ID: "be-2", Title: "HTTP Services", Description: "Routing, middleware and JSON APIs", StepOrder: 2, Resources: []string{"https://gin-gonic.com/docs/"}, EstimatedHours: 20},
			{ID: "be-3", Title: "Databases", Description: "SQL, migrations and ORMs", StepOrder: 3, Resources: []string{"https://gorm.io/docs/"}, EstimatedHours: 25},
			{ID: "be-4", Title: "Observability", Description: "Structured logs and metrics", StepOrder: 4, Resources: []string{"https://prometheus.io/docs/"}, EstimatedHours: 10},
		},
	},
	{
		ID:          "path-fullstack",
		Title:       "Full Stack Path",
		Description: "Frontend and backend combined into complete products",
		Skill:       "Full Stack",
		Icon:        "🚀",
		Difficulty:  "Advanced",
		Duration:    "16 weeks",
		Steps: []entities.LearningStep{
			{ID: "fs-1", Title: "Product Architecture", Description: "Monolith vs services, API contracts", StepOrder: 1, Resources: []string{"https://martinfowler.com"}, EstimatedHours: 15},
			{ID: "fs-2", Title: "Auth & Sessions", Description: "Password storage, tokens and cookies", StepOrder: 2, Resources: []string{"https://owasp.org/www-project-cheat-sheets/"}, EstimatedHours: 20},
			{ID: "fs-3", Title: "File Storage", Description: "Object storage and upload pipelines", StepOrder: 3, Resources: []string{"https://aws.amazon.com/s3/"}, EstimatedHours: 15},
			{ID: "fs-4", Title: "Shipping", Description: "Docker, CI/CD and monitoring", StepOrder: 4, Resources: []string{"https://docs.docker.com"}, EstimatedHours: 20},
		},
	},
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
