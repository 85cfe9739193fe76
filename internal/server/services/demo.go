package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// DemoUser is an account created by SeedDemoData.
type DemoUser struct {
	UserName string
	Password string
}

// DemoUsers are the accounts SeedDemoData registers.
var DemoUsers = []DemoUser{
	{"john_doe", "SecurePass123!"},
	{"sarah_smith", "MyPassword456@"},
	{"mike_wilson", "StrongPwd789#"},
	{"emily_brown", "SafePass321$"},
	{"david_jones", "SecureKey999%"},
	{"alex_garcia", "AlexG@2024!"},
	{"lisa_anderson", "Lisa#Secure456"},
	{"james_taylor", "JamesT@y789!"},
	{"maria_martinez", "Maria#Pass321"},
	{"robert_thomas", "Rob3rt#2024!"},
}

var (
	demoSites = []string{
		"Gmail", "GitHub", "LinkedIn", "Netflix", "AWS Console", "Spotify", "Amazon", "Facebook",
		"Instagram", "Twitter", "Dropbox", "Apple ID", "PayPal", "Zoom", "Slack",
	}
	demoCategories = []string{
		"Email", "Work", "Social", "Entertainment", "Banking", "Shopping", "Storage", "Productivity", "Security",
	}
)

// demoRecordCount gives each demo user between 10 and 15 records.
func demoRecordCount(userIndex int) int {
	return 10 + userIndex%6
}

func demoRecord(username string, i int) models.RecordFields {
	site := demoSites[i%len(demoSites)]
	return models.RecordFields{
		Site:            site,
		AccountUsername: username + "@example.com",
		Secret:          fmt.Sprintf("%s@%s%d#2024!", site[:3], username[:4], i),
		Category:        demoCategories[i%len(demoCategories)],
		Notes:           "Account for " + site,
	}
}

// SeedDemoData registers DemoUsers and fills their vaults through the
// regular service operations. It returns the number of records added.
func (s *VaultService) SeedDemoData(ctx context.Context) (int, error) {
	added := 0
	for ui, u := range DemoUsers {
		sess, err := s.Register(ctx, u.UserName, u.Password)
		if err != nil {
			return added, fmt.Errorf("error seeding user %q: %w", u.UserName, err)
		}

		for i := 0; i < demoRecordCount(ui); i++ {
			if _, err := s.AddPassword(ctx, sess.Token, u.UserName, demoRecord(u.UserName, i)); err != nil {
				return added, fmt.Errorf("error seeding records for %q: %w", u.UserName, err)
			}
			added++
		}

		if err := s.Logout(ctx, sess.Token, u.UserName); err != nil {
			return added, err
		}
	}

	s.logger.Info(ctx, "demo data seeded", "users", len(DemoUsers), "records", added)
	return added, nil
}
