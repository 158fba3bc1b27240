// Command seed loads demo accounts, jobs, articles and a candidate profile
// into the configured Postgres database. Running it twice is harmless.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"yuva-hire-backend/config"
	"yuva-hire-backend/internal/domain"
	"yuva-hire-backend/internal/repository/postgres"
	"yuva-hire-backend/internal/usecase"
	"yuva-hire-backend/pkg/apperror"
	"yuva-hire-backend/pkg/auth"
	"yuva-hire-backend/pkg/database"
	"yuva-hire-backend/pkg/logger"
	"yuva-hire-backend/pkg/validation"
)

type seeder struct {
	authUC      domain.AuthUsecase
	jobUC       domain.JobUsecase
	articleUC   domain.ArticleUsecase
	candidateUC domain.CandidateUsecase
}

func main() {
	college := flag.String("college", "Yuva Institute of Technology", "college the demo accounts belong to")
	password := flag.String("password", "password123", "password for every demo account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	if cfg.StorageDriver != config.StoragePostgres {
		logger.Log.Error("Seeding needs STORAGE_DRIVER=postgres; in-memory data would vanish on exit")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunPoolMigrations(ctx, pool); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		logger.Log.Error("Invalid bcrypt cost", "error", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	jobs := postgres.NewJobRepository(pool)
	applications := postgres.NewApplicationRepository(pool)
	candidates := postgres.NewCandidateRepository(pool)
	articles := postgres.NewArticleRepository(pool)
	validate := validation.New()

	s := &seeder{
		authUC: usecase.NewAuthUsecase(usecase.AuthDeps{
			Users:      users,
			Candidates: candidates,
			Tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
			Hasher:     hasher,
			Validate:   validate,
		}),
		jobUC:       usecase.NewJobUsecase(jobs, validate),
		articleUC:   usecase.NewArticleUsecase(articles, validate),
		candidateUC: usecase.NewCandidateUsecase(candidates, applications, validate),
	}

	if err := s.run(ctx, *college, *password); err != nil {
		logger.Log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Seeding complete", "college", *college)
}

func (s *seeder) run(ctx context.Context, college, password string) error {
	admin, err := s.account(ctx, domain.RegisterInput{
		Email:    "admin@yuva.edu",
		Password: password,
		Name:     "Placement Cell",
		Role:     domain.RoleAdmin,
		College:  college,
	})
	if err != nil {
		return err
	}

	dept := "Computer Science"
	student, err := s.account(ctx, domain.RegisterInput{
		Email:      "student@yuva.edu",
		Password:   password,
		Name:       "Asha Rao",
		Role:       domain.RoleStudent,
		College:    college,
		Department: &dept,
	})
	if err != nil {
		return err
	}

	if err := s.jobs(ctx, admin); err != nil {
		return err
	}
	if err := s.articles(ctx, admin); err != nil {
		return err
	}
	return s.profile(ctx, student)
}

// account registers a user, or logs in when the email is already taken.
func (s *seeder) account(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	user, _, err := s.authUC.Register(ctx, in)
	if err == nil {
		logger.Log.Info("Created account", "email", in.Email, "role", in.Role)
		return user, nil
	}
	if appErr, ok := apperror.As(err); !ok || appErr.Code != http.StatusConflict {
		return nil, err
	}

	user, _, err = s.authUC.Login(ctx, in.Email, in.Password, domain.LoginMeta{IP: "127.0.0.1", UserAgent: "seed"})
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Account already exists", "email", in.Email)
	return user, nil
}

func (s *seeder) jobs(ctx context.Context, admin *domain.User) error {
	_, page, err := s.jobUC.ListMine(ctx, admin, 1, 1)
	if err != nil {
		return err
	}
	if page.Total > 0 {
		logger.Log.Info("Jobs already seeded", "count", page.Total)
		return nil
	}

	deadline := time.Now().AddDate(0, 2, 0).Format(domain.DateLayout)
	inputs := []domain.JobInput{
		{
			Title:        "Frontend Developer Intern",
			Description:  "Build responsive interfaces for our hiring dashboard.",
			Location:     "Bengaluru",
			JobType:      domain.JobTypeInternship,
			Salary:       "20000",
			Deadline:     deadline,
			Requirements: []string{"React", "TypeScript", "CSS"},
		},
		{
			Title:        "Backend Engineer",
			Description:  "Own APIs and data pipelines for campus recruiting.",
			Location:     "Pune",
			JobType:      domain.JobTypeFullTime,
			Salary:       "900000",
			SalaryPeriod: "Yearly",
			Deadline:     deadline,
			Requirements: []string{"Go", "PostgreSQL"},
		},
		{
			Title:        "Data Analyst (Remote)",
			Description:  "Turn placement data into weekly insights.",
			Location:     "Remote",
			JobType:      domain.JobTypeRemote,
			Salary:       "45000",
			Deadline:     deadline,
			Requirements: []string{"SQL", "Excel"},
		},
	}
	for _, in := range inputs {
		if _, err := s.jobUC.Create(ctx, admin, in); err != nil {
			return err
		}
	}
	logger.Log.Info("Created jobs", "count", len(inputs))
	return nil
}

func (s *seeder) articles(ctx context.Context, admin *domain.User) error {
	existing, err := s.articleUC.List(ctx, admin, "")
	if err != nil {
		return err
	}
	titles := make(map[string]bool, len(existing))
	for _, a := range existing {
		titles[a.Title] = true
	}

	inputs := []domain.ArticleInput{
		{
			Title:    "Writing a resume recruiters actually read",
			Excerpt:  "Five edits that make a one-page resume work harder.",
			Content:  "Lead with impact, quantify results, and cut anything that does not support the role you want.",
			Category: "Resume",
			ReadTime: "5 min read",
			Featured: true,
		},
		{
			Title:    "Preparing for your first technical interview",
			Excerpt:  "What to practise in the two weeks before.",
			Content:  "Review fundamentals, practise explaining your projects, and do at least two timed mock rounds.",
			Category: "Interview",
			ReadTime: "7 min read",
			Trending: true,
		},
	}
	for _, in := range inputs {
		if titles[in.Title] {
			continue
		}
		if _, err := s.articleUC.Create(ctx, admin, in); err != nil {
			return err
		}
		logger.Log.Info("Created article", "title", in.Title)
	}
	return nil
}

func (s *seeder) profile(ctx context.Context, student *domain.User) error {
	title := "Aspiring Full-stack Developer"
	location := "Bengaluru"
	skills := []string{"Go", "React", "SQL"}
	gpa := 8.4
	projects := []domain.Project{{
		Name:         "Campus Events App",
		Description:  "Event discovery for student clubs.",
		Technologies: []string{"Next.js", "Go"},
	}}

	_, err := s.candidateUC.UpdateMine(ctx, student, domain.ProfileInput{
		Title:    &title,
		Location: &location,
		Skills:   &skills,
		GPA:      &gpa,
		Projects: &projects,
	})
	return err
}
