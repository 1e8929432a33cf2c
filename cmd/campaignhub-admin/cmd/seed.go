package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var flagSeedClean bool

// Fixed identifiers keep reseeding idempotent.
const (
	seedOwnerID   = "00000000-0000-4000-8000-000000000001"
	seedAgencyID  = "00000000-0000-4000-8000-000000000002"
	seedMemberID  = "00000000-0000-4000-8000-000000000003"
	seedClientID  = "00000000-0000-4000-8000-000000000004"
	seedProjectID = "00000000-0000-4000-8000-000000000005"
	seedPlanID    = "00000000-0000-4000-8000-000000000006"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development seed data",
	Long: `Loads a demo agency with an owner, a client, a project, and a
campaign plan. Safe to run repeatedly; use --clean to remove the demo
data first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if flagSeedClean {
			if err := cleanSeedData(ctx, db); err != nil {
				return fmt.Errorf("failed to clean seed data: %w", err)
			}
			fmt.Println("Removed existing seed data")
		}

		if err := insertSeedData(ctx, db); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		fmt.Println("Seed data loaded")
		fmt.Printf("  agency: Demo Agency (%s)\n", seedAgencyID)
		fmt.Printf("  owner:  owner@demo.agency (external_id seed-owner)\n")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&flagSeedClean, "clean", false, "Remove existing seed data before loading")
}

func insertSeedData(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []struct {
		query string
		args  []any
	}{
		{
			`INSERT INTO users (id, external_id, email, name)
			 VALUES ($1, 'seed-owner', 'owner@demo.agency', 'Demo Owner')
			 ON CONFLICT (id) DO NOTHING`,
			[]any{seedOwnerID},
		},
		{
			`INSERT INTO agencies (id, name, slug, created_by)
			 VALUES ($1, 'Demo Agency', 'demo-agency', $2)
			 ON CONFLICT (id) DO NOTHING`,
			[]any{seedAgencyID, seedOwnerID},
		},
		{
			`UPDATE users SET primary_agency_id = $1, primary_role = 'OWNER', updated_at = NOW()
			 WHERE id = $2`,
			[]any{seedAgencyID, seedOwnerID},
		},
		{
			`INSERT INTO agency_memberships (id, agency_id, user_id, role, status)
			 VALUES ($1, $2, $3, 'OWNER', 'ACTIVE')
			 ON CONFLICT (id) DO NOTHING`,
			[]any{seedMemberID, seedAgencyID, seedOwnerID},
		},
		{
			`INSERT INTO clients (id, agency_id, name, contact_info)
			 VALUES ($1, $2, 'Acme Retail', '{"email": "marketing@acme.example", "phone": "+1-555-0100"}')
			 ON CONFLICT (id) DO NOTHING`,
			[]any{seedClientID, seedAgencyID},
		},
		{
			`INSERT INTO projects (id, agency_id, client_id, name, status, start_date, end_date)
			 VALUES ($1, $2, $3, 'Summer Launch', 'ACTIVE', NOW(), NOW() + INTERVAL '90 days')
			 ON CONFLICT (id) DO NOTHING`,
			[]any{seedProjectID, seedAgencyID, seedClientID},
		},
		{
			`INSERT INTO campaign_plans (id, project_id, agency_id, goals, themes, events, num_posts, num_reels, split_percent, meeting_notes)
			 VALUES ($1, $2, $3,
			         ARRAY['Brand awareness', 'Lead generation'],
			         ARRAY['Summer', 'Outdoors'],
			         ARRAY['Product launch week'],
			         12, 4, 60, 'Kickoff notes: focus on short-form video.')
			 ON CONFLICT (id) DO NOTHING`,
			[]any{seedPlanID, seedProjectID, seedAgencyID},
		},
	}

	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s.query, s.args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func cleanSeedData(ctx context.Context, db *sql.DB) error {
	// Delete in dependency order. Cascades handle memberships and plans,
	// but the user row must lose its primary agency reference first.
	stmts := []string{
		`UPDATE users SET primary_agency_id = NULL, primary_role = NULL WHERE id = '` + seedOwnerID + `'`,
		`DELETE FROM agencies WHERE id = '` + seedAgencyID + `'`,
		`DELETE FROM users WHERE id = '` + seedOwnerID + `'`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
