package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/zaalasociety/academy-api/internal/models"
	"github.com/zaalasociety/academy-api/internal/repository"
	"github.com/zaalasociety/academy-api/pkg/config"
	"github.com/zaalasociety/academy-api/pkg/database"
)

// Seeds the catalog with the standard pricing tiers, a demo instructor, a
// starter course, landing-page content, and an admin account. Pricing plans
// are replaced wholesale on every run; everything else is insert-only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pricingRepo := repository.NewPricingRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	contentRepo := repository.NewContentRepository(db)
	userRepo := repository.NewUserRepository(db)

	if err := seedPricing(ctx, pricingRepo); err != nil {
		log.Fatalf("failed to seed pricing plans: %v", err)
	}

	instructorID, err := seedInstructor(ctx, instructorRepo)
	if err != nil {
		log.Fatalf("failed to seed instructor: %v", err)
	}

	if err := seedCourse(ctx, courseRepo, instructorID); err != nil {
		log.Fatalf("failed to seed course: %v", err)
	}

	if err := seedContent(ctx, contentRepo); err != nil {
		log.Fatalf("failed to seed content: %v", err)
	}

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	log.Println("seed complete")
}

func seedPricing(ctx context.Context, repo *repository.PricingRepository) error {
	if err := repo.DeleteAll(ctx); err != nil {
		return err
	}

	plans := []models.PricingPlan{
		{
			Name:                "Starter",
			Price:               decimal.RequireFromString("25.00"),
			Currency:            "USD",
			BillingPeriod:       "month",
			ClassesPerWeek:      1,
			ClassesPerMonth:     4,
			StudentsEnrolled:    120,
			SixMonthDiscount:    7,
			TwelveMonthDiscount: 10,
			Active:              true,
		},
		{
			Name:                "Basic",
			Price:               decimal.RequireFromString("35.00"),
			Currency:            "USD",
			BillingPeriod:       "month",
			ClassesPerWeek:      2,
			ClassesPerMonth:     8,
			StudentsEnrolled:    210,
			Popular:             true,
			SixMonthDiscount:    7,
			TwelveMonthDiscount: 10,
			Active:              true,
		},
		{
			Name:                "Standard",
			Price:               decimal.RequireFromString("45.00"),
			Currency:            "USD",
			BillingPeriod:       "month",
			ClassesPerWeek:      3,
			ClassesPerMonth:     12,
			StudentsEnrolled:    160,
			SixMonthDiscount:    7,
			TwelveMonthDiscount: 10,
			Active:              true,
		},
		{
			Name:                "Intensive",
			Price:               decimal.RequireFromString("55.00"),
			Currency:            "USD",
			BillingPeriod:       "month",
			ClassesPerWeek:      4,
			ClassesPerMonth:     16,
			StudentsEnrolled:    85,
			SixMonthDiscount:    7,
			TwelveMonthDiscount: 10,
			Active:              true,
		},
		{
			Name:                "Family",
			Price:               decimal.RequireFromString("30.00"),
			Currency:            "USD",
			BillingPeriod:       "month",
			ClassesPerWeek:      2,
			ClassesPerMonth:     8,
			StudentsEnrolled:    95,
			SixMonthDiscount:    7,
			TwelveMonthDiscount: 10,
			Active:              true,
		},
	}

	for i := range plans {
		if err := repo.Create(ctx, &plans[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedInstructor(ctx context.Context, repo *repository.InstructorRepository) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	instructor := &models.Instructor{
		Email:        "instructor@example.com",
		PasswordHash: string(hash),
		Name:         "Ahmad Hassan",
		Title:        "Senior Quran Instructor",
		Bio:          "Certified in tajweed with over ten years of teaching experience.",
		Active:       true,
	}
	if err := repo.Create(ctx, instructor); err != nil {
		return "", err
	}
	return instructor.ID, nil
}

func seedAdmin(ctx context.Context, repo *repository.UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		FullName:     "Site Administrator",
		Role:         models.UserRoleAdmin,
		Active:       true,
	}
	return repo.Create(ctx, admin)
}

func seedCourse(ctx context.Context, repo *repository.CourseRepository, instructorID string) error {
	course := &models.Course{
		Title:          "Quran Recitation Fundamentals",
		Slug:           "quran-recitation-fundamentals",
		Description:    "Learn correct pronunciation and recitation from the ground up.",
		Overview:       "A structured path through the Arabic alphabet, tajweed rules, and guided recitation practice.",
		Price:          "49.99",
		DurationWeeks:  12,
		LessonsCount:   3,
		InstructorID:   &instructorID,
		TrialAvailable: true,
		TrialDays:      3,
		CreatedAt:      time.Now().UTC(),
	}
	if err := repo.Create(ctx, course); err != nil {
		return err
	}

	section := &models.CurriculumSection{
		CourseID:    course.ID,
		Title:       "Getting Started",
		Description: "Foundations before the first recitation.",
		Position:    1,
	}
	if err := repo.CreateSection(ctx, section); err != nil {
		return err
	}

	lessons := []models.Lesson{
		{SectionID: section.ID, Title: "The Arabic Alphabet", PreviewAvailable: true, Position: 1},
		{SectionID: section.ID, Title: "Makharij of the Letters", Position: 2},
		{SectionID: section.ID, Title: "Your First Recitation", Position: 3},
	}
	for i := range lessons {
		if err := repo.CreateLesson(ctx, &lessons[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedContent(ctx context.Context, repo *repository.ContentRepository) error {
	services := []models.Service{
		{Title: "One-on-One Classes", Description: "Private sessions tailored to your pace.", Icon: "user"},
		{Title: "Tajweed Certification", Description: "Structured program with a certified ijazah track.", Icon: "award"},
		{Title: "Kids Program", Description: "Engaging curriculum designed for young learners.", Icon: "smile"},
	}
	for i := range services {
		if err := repo.CreateService(ctx, &services[i]); err != nil {
			return err
		}
	}

	testimonials := []models.Testimonial{
		{Author: "Fatima R.", Role: "Student", Quote: "The instructors are patient and the lessons are well structured."},
		{Author: "Yusuf K.", Role: "Parent", Quote: "My children look forward to every class."},
	}
	for i := range testimonials {
		if err := repo.CreateTestimonial(ctx, &testimonials[i]); err != nil {
			return err
		}
	}
	return nil
}
