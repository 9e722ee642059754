package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/repository/specification"
	"counselling-portal-be/internal/repository/unitofwork"
	"counselling-portal-be/pkg/database"

	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	admin, err := uow.UserRepository().FindOne(ctx,
		specification.ByRole{Role: string(entity.UserRoleAdmin)},
		specification.ActiveUsers{},
	)
	if err != nil {
		log.Fatalf("Error: Failed to look up admin: %v", err)
	}
	if admin != nil {
		color.Yellow("Active admin %s already present, skipping seed.", admin.Email)
		return
	}

	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error: Failed to begin transaction: %v", err)
	}

	users, err := seed(ctx, uow)
	if err != nil {
		_ = uow.Rollback()
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	if err := uow.Commit(); err != nil {
		log.Fatalf("Error: Failed to commit: %v", err)
	}

	color.Green("Seed completed.")
	printTokens(users)
}

type seeded struct {
	admin       *entity.User
	counsellors []*entity.User
	clients     []*entity.User
}

func newUser(name, email string, role entity.UserRole) *entity.User {
	return &entity.User{
		Id:                uuid.New(),
		GoogleId:          "seed-" + email,
		Email:             email,
		Name:              name,
		Role:              role,
		IsProfileComplete: true,
		IsActive:          true,
	}
}

func seed(ctx context.Context, uow unitofwork.UnitOfWork) (*seeded, error) {
	s := &seeded{admin: newUser("Portal Admin", "admin@campus.edu", entity.UserRoleAdmin)}

	for _, c := range []struct{ name, email string }{
		{"Dr. Asha Menon", "asha.menon@campus.edu"},
		{"Dr. Ben Thomas", "ben.thomas@campus.edu"},
	} {
		u := newUser(c.name, c.email, entity.UserRoleCounsellor)
		u.EmployeeId = "EMP-" + c.email[:3]
		u.Specialization = []string{"Anxiety", "Academic Stress"}
		u.AvailableSlots = []entity.AvailableSlot{{Day: "Monday", StartTime: "10:00", EndTime: "13:00"}}
		s.counsellors = append(s.counsellors, u)
	}

	for i, c := range []struct {
		name, department string
		residence        entity.ResidenceType
	}{
		{"Riya Sharma", "CSE", entity.ResidenceHosteller},
		{"Arjun Nair", "ECE", entity.ResidenceDayScholar},
		{"Meera Iyer", "CSE", entity.ResidenceDayScholar},
		{"Kabir Singh", "MECH", entity.ResidenceHosteller},
	} {
		u := newUser(c.name, fmt.Sprintf("student%d@campus.edu", i+1), entity.UserRoleClient)
		u.RegistrationNumber = fmt.Sprintf("21BCE%03d", i+1)
		u.Department = c.department
		u.ResidenceType = c.residence
		u.EmergencyContact = entity.EmergencyContact{Name: "Parent", Relationship: "Parent", Phone: "+910000000000"}
		s.clients = append(s.clients, u)
	}

	all := append([]*entity.User{s.admin}, s.counsellors...)
	all = append(all, s.clients...)
	for _, u := range all {
		if err := uow.UserRepository().Create(ctx, u); err != nil {
			return nil, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		color.Cyan("  user        %-10s %s", u.Role, u.Email)
	}

	now := time.Now()
	categories := entity.Categories

	for i, client := range s.clients {
		for j := 0; j < 3; j++ {
			n := i*3 + j
			a := &entity.Appointment{
				Id:            uuid.New(),
				ClientId:      client.Id,
				Category:      categories[n%len(categories)],
				Description:   "Seeded appointment",
				PreferredDate: now.AddDate(0, 0, -n),
				PreferredTime: "10:00",
				Status:        entity.AppointmentPending,
				Priority:      entity.PriorityMedium,
			}

			// every third appointment stays pending
			var session *entity.Session
			if j != 2 {
				counsellor := s.counsellors[n%len(s.counsellors)]
				a.Accept(counsellor.Id, now.AddDate(0, 0, -n), "11:00")
				progress := []entity.Progress{entity.ProgressOngoing, entity.ProgressResolved, entity.ProgressFollowUpRequired}[n%3]
				session = entity.NewSession(a, "Seeded session notes", progress, now.AddDate(0, 0, -n).Add(time.Hour))
				session.Interventions = []string{"Active listening", "CBT worksheet"}
			}

			if err := uow.AppointmentRepository().Create(ctx, a); err != nil {
				return nil, fmt.Errorf("create appointment: %w", err)
			}
			color.Cyan("  appointment %-10s %s", a.Status, a.Category)

			if session != nil {
				if err := uow.SessionRepository().Create(ctx, session); err != nil {
					return nil, fmt.Errorf("create session: %w", err)
				}
				color.Cyan("  session     %-10s %s", "", session.Progress)
			}
		}
	}

	return s, nil
}

// printTokens mints short-lived bearer tokens for manual testing when JWT_SECRET is set.
func printTokens(s *seeded) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return
	}

	for _, u := range append([]*entity.User{s.admin}, s.counsellors...) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": u.Id.String(),
			"role":    string(u.Role),
			"exp":     time.Now().Add(24 * time.Hour).Unix(),
		})
		signed, err := tok.SignedString([]byte(secret))
		if err != nil {
			color.Red("token for %s: %v", u.Email, err)
			continue
		}
		fmt.Printf("%s %s\n", color.GreenString("%-24s", u.Email), signed)
	}
}
