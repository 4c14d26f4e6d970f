package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"topic-lab/internal"
	"topic-lab/projection"
	"topic-lab/repositories"
)

// Read-only inspector: dumps the topic board and the reports of a running
// deployment without touching any row.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatalf("Database pool: %v", err)
	}
	defer pool.Close()

	topicRepo := repositories.NewTopicRepository(pool)
	reporter := projection.NewReporter(
		repositories.NewAnalyticsRepository(pool),
		repositories.NewSearchLogRepository(pool),
		config.PopularQueryLimit,
	)

	// 2. Topic board
	cards, err := topicRepo.ListCards(ctx, config.SearchLimit)
	if err != nil {
		log.Fatalf("Listing topics: %v", err)
	}

	color.Bold.Println("TOPICS")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Status", "Supervisor", "Student"})
	table.SetAutoWrapText(false)
	for _, c := range cards {
		teacher, student := "-", "-"
		if c.TeacherName != nil {
			teacher = *c.TeacherName
		}
		if c.StudentName != nil {
			student = *c.StudentName
		}
		table.Append([]string{fmt.Sprintf("%d", c.ID), c.Title, string(c.Status), teacher, student})
	}
	table.Render()

	// 3. Reports
	sections := []struct {
		title  string
		render func(context.Context) (string, error)
	}{
		{"STUDENTS PER GROUP", reporter.GroupDistribution},
		{"STUDENTS PER DEPARTMENT", reporter.DepartmentDistribution},
		{"STUDENTS WITH A TOPIC", reporter.StudentsWithTopic},
		{"STUDENTS WITHOUT A TOPIC", reporter.StudentsWithoutTopic},
		{"POPULAR SEARCHES", reporter.PopularQueries},
	}
	for _, s := range sections {
		out, err := s.render(ctx)
		if err != nil {
			log.Fatalf("Report %q: %v", s.title, err)
		}
		fmt.Println()
		color.Bold.Println(s.title)
		if out == "" {
			color.Gray.Println("(no data)")
			continue
		}
		fmt.Println(out)
	}
}
