// Seed fills a fresh database with an admin account and demo content for
// local development. Running it twice is safe; existing records are kept.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"rampung/internal/config"
	"rampung/internal/database"
	"rampung/internal/domain"
	"rampung/internal/modules/diagnostic"
	"rampung/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		fatal("connect: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		fatal("migrate: %v", err)
	}

	ctx := context.Background()
	seedAdmin(ctx, repository.NewUserRepository(db))
	seedPortfolio(ctx, repository.NewPortfolioRepository(db))
	seedTestimonials(ctx, repository.NewTestimonialRepository(db))
	seedSubmissions(ctx, repository.NewSubmissionRepository(db))

	fmt.Println("seed complete")
}

func seedAdmin(ctx context.Context, users *repository.UserRepository) {
	email := getenv("ADMIN_EMAIL", "admin@rampung.space")
	password := getenv("ADMIN_PASSWORD", "admin12345")

	if _, err := users.GetByEmail(ctx, email); err == nil {
		fmt.Println("admin exists:", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		fatal("lookup admin: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fatal("hash password: %v", err)
	}

	err = users.Create(ctx, &domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Site Admin",
		Role:         domain.RoleSuperAdmin,
	})
	if err != nil {
		fatal("create admin: %v", err)
	}
	fmt.Println("admin created:", email)
}

func seedPortfolio(ctx context.Context, portfolios *repository.PortfolioRepository) {
	items := []domain.Portfolio{
		{
			Title:       "Warung Chain POS",
			Slug:        "warung-chain-pos",
			Challenge:   "Three branches reconciled stock by phone every evening.",
			Solution:    "A shared inventory dashboard with per-branch daily closing.",
			TechStack:   []string{"Go", "PostgreSQL", "Next.js"},
			Tags:        []string{"retail", "dashboard"},
			IsFeatured:  true,
			IsPublished: true,
			SortOrder:   1,
		},
		{
			Title:       "Kelas Online Booking",
			Slug:        "kelas-online-booking",
			Challenge:   "Manual class scheduling over chat kept double-booking tutors.",
			Solution:    "Self-service booking with payment and automatic reminders.",
			TechStack:   []string{"Go", "Midtrans", "React"},
			Tags:        []string{"education", "payment"},
			IsPublished: true,
			SortOrder:   2,
		},
	}

	for i := range items {
		if _, err := portfolios.GetBySlug(ctx, items[i].Slug); err == nil {
			continue
		}
		if err := portfolios.Create(ctx, &items[i]); err != nil {
			fatal("create portfolio: %v", err)
		}
	}
	fmt.Println("portfolio seeded")
}

func seedTestimonials(ctx context.Context, testimonials *repository.TestimonialRepository) {
	n, err := testimonials.Count(ctx)
	if err != nil {
		fatal("count testimonials: %v", err)
	}
	if n > 0 {
		fmt.Println("testimonials exist, skipping")
		return
	}

	items := []domain.Testimonial{
		{
			ClientName:     "Dewi Lestari",
			ClientCompany:  "Warung Kita",
			ClientPosition: "Owner",
			Quote:          "Delivered exactly what our kitchen staff needed, on time.",
			Rating:         5,
			IsPublished:    true,
			SortOrder:      1,
		},
		{
			ClientName:     "Budi Santoso",
			ClientCompany:  "Kelas Pintar",
			ClientPosition: "Founder",
			Quote:          "Clear communication from the first call to the handover.",
			Rating:         5,
			IsPublished:    true,
			SortOrder:      2,
		},
	}
	for i := range items {
		if err := testimonials.Create(ctx, &items[i]); err != nil {
			fatal("create testimonial: %v", err)
		}
	}
	fmt.Println("testimonials seeded")
}

func seedSubmissions(ctx context.Context, submissions *repository.SubmissionRepository) {
	n, err := submissions.CountCreatedSince(ctx, time.Time{})
	if err != nil {
		fatal("count submissions: %v", err)
	}
	if n > 0 {
		fmt.Println("submissions exist, skipping")
		return
	}

	svc := diagnostic.NewService(submissions, nil)
	drafts := []domain.Draft{
		{
			Name:       "Rina Wijaya",
			Email:      "rina@warungkita.id",
			Company:    "Warung Kita",
			BudgetIDR:  "75.000.000",
			Platform:   domain.PlatformWebApp,
			TargetUser: domain.TargetB2C,
			Features:   []domain.Feature{domain.FeatureAuth, domain.FeaturePayment},
			Timeline:   domain.TimelineNormal,
		},
		{
			Name:       "Agus Pratama",
			Email:      "agus@pasardigital.co.id",
			Company:    "Pasar Digital",
			BudgetUSD:  "20000",
			Platform:   domain.PlatformMobileAndroid,
			TargetUser: domain.TargetMarketplace,
			Features: []domain.Feature{
				domain.FeatureAuth, domain.FeaturePayment,
				domain.FeatureRealtime, domain.FeatureGeolocation,
			},
			Timeline: domain.TimelineUrgent,
		},
		{
			Name:       "Siti Rahma",
			Email:      "siti@internaltools.id",
			Platform:   domain.PlatformWebApp,
			TargetUser: domain.TargetInternal,
			Features:   []domain.Feature{domain.FeatureDashboard},
			Timeline:   domain.TimelineFlexible,
		},
	}

	for _, d := range drafts {
		if _, err := svc.Submit(ctx, d); err != nil {
			fatal("seed submission: %v", err)
		}
	}
	fmt.Println("submissions seeded")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
