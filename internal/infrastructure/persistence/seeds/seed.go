// Package seeds populates a fresh database with demo data so the walkthrough
// flows work out of the box.
package seeds

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
)

type seedUser struct {
	Username string
	Password string
	Email    string
	Role     string
	FullName string
}

var seedUsers = []seedUser{
	{Username: "admin", Password: "admin123", Email: "admin@helpdesk.com", Role: "administrator", FullName: "Administrator"},
	{Username: "manager1", Password: "manager123", Email: "manager@helpdesk.com", Role: "manager", FullName: "Support Manager"},
	{Username: "agent1", Password: "agent123", Email: "agent1@helpdesk.com", Role: "agent", FullName: "John Smith"},
	{Username: "agent2", Password: "agent123", Email: "agent2@helpdesk.com", Role: "agent", FullName: "Sarah Johnson"},
	{Username: "customer1", Password: "customer123", Email: "customer1@email.com", Role: "customer", FullName: "Mike Davis"},
	{Username: "customer2", Password: "customer123", Email: "customer2@email.com", Role: "customer", FullName: "Emily Wilson"},
}

// Seed inserts demo users, tickets, knowledge base articles and notifications.
// It is idempotent: a database that already has users is left untouched.
func Seed(db *gorm.DB, hasher user.PasswordHasher) error {
	var userCount int64
	if err := db.Model(&models.UserModel{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to inspect users table: %w", err)
	}
	if userCount > 0 {
		return nil
	}

	userIDs := make(map[string]uint, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := hasher.Hash(su.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		model := models.UserModel{
			Username:     su.Username,
			PasswordHash: hash,
			Email:        su.Email,
			Role:         su.Role,
			FullName:     su.FullName,
		}
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.Username, err)
		}
		userIDs[su.Username] = model.ID
	}

	if err := seedTickets(db, userIDs); err != nil {
		return err
	}
	if err := seedArticles(db, userIDs); err != nil {
		return err
	}
	return seedNotifications(db, userIDs)
}

func seedTickets(db *gorm.DB, userIDs map[string]uint) error {
	now := time.Now().UTC()
	customer1 := userIDs["customer1"]
	customer2 := userIDs["customer2"]
	agent1 := userIDs["agent1"]
	agent2 := userIDs["agent2"]

	firstResponse := now.Add(-2 * time.Hour).UnixMilli()
	resolved := now.Add(-1 * time.Hour).UnixMilli()

	tickets := []models.TicketModel{
		{
			Code:        "TICK-2025-001",
			Subject:     "Login Issues",
			Description: "Unable to log into the customer portal since this morning.",
			Category:    "Technical",
			Priority:    "high",
			Status:      "open",
			CustomerID:  &customer1,
			AssigneeID:  &agent1,
		},
		{
			Code:            "TICK-2025-002",
			Subject:         "Password Reset Request",
			Description:     "I forgot my password and the reset email never arrives.",
			Category:        "Account",
			Priority:        "medium",
			Status:          "in_progress",
			CustomerID:      &customer2,
			AssigneeID:      &agent2,
			FirstResponseAt: &firstResponse,
		},
		{
			Code:            "TICK-2025-003",
			Subject:         "Feature Request",
			Description:     "Please add dark mode to the dashboard.",
			Category:        "Enhancement",
			Priority:        "low",
			Status:          "resolved",
			CustomerID:      &customer1,
			AssigneeID:      &agent1,
			FirstResponseAt: &firstResponse,
			ResolvedAt:      &resolved,
		},
	}

	for _, model := range tickets {
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed ticket %s: %w", model.Code, err)
		}
	}
	return nil
}

func seedArticles(db *gorm.DB, userIDs map[string]uint) error {
	admin := userIDs["admin"]

	articles := []models.ArticleModel{
		{
			Title: "How to Reset Your Password",
			Content: "## Resetting your password\n\n" +
				"1. Open the login page and click **Forgot Password**.\n" +
				"2. Enter the email address on your account.\n" +
				"3. Enter the verification code we send you.\n" +
				"4. Choose a new password.\n",
			Excerpt:     "Step-by-step guide to reset your password safely and securely.",
			Category:    "Account",
			AuthorID:    &admin,
			IsPublished: true,
		},
		{
			Title: "Troubleshooting Login Problems",
			Content: "## Common causes\n\n" +
				"- Cached credentials: clear your browser cache and retry.\n" +
				"- Caps lock: passwords are case sensitive.\n" +
				"- Account lockout: wait 15 minutes after repeated failures.\n",
			Excerpt:     "Common solutions for login problems and authentication errors.",
			Category:    "Technical",
			AuthorID:    &admin,
			IsPublished: true,
		},
	}

	for _, model := range articles {
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed article %q: %w", model.Title, err)
		}
	}
	return nil
}

func seedNotifications(db *gorm.DB, userIDs map[string]uint) error {
	code1 := "TICK-2025-001"
	code2 := "TICK-2025-002"

	notifications := []models.NotificationModel{
		{
			UserID:     userIDs["agent1"],
			Type:       "ticket",
			Title:      "New Ticket Assigned",
			Message:    "Ticket TICK-2025-001 has been assigned to you.",
			TicketCode: &code1,
		},
		{
			UserID:     userIDs["agent2"],
			Type:       "ticket",
			Title:      "New Ticket Assigned",
			Message:    "Ticket TICK-2025-002 has been assigned to you.",
			TicketCode: &code2,
		},
	}

	for _, model := range notifications {
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed notification: %w", err)
		}
	}
	return nil
}
