package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iiuc/alumnihub/internal/bootstrap"
	"github.com/iiuc/alumnihub/internal/config"
	"github.com/iiuc/alumnihub/internal/pkg/logger"
	"github.com/iiuc/alumnihub/internal/seed"
)

// Device-shell demo: boots the data layer, restores the session and prints
// the current feed. The real presentation layer lives in the mobile app.
func main() {
	ctx := context.Background()

	deps, err := bootstrap.BuildDependencies(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}
	defer deps.Close()

	if config.GetEnvAsBool("ALUMNIHUB_SEED_DEMO", false) {
		if err := seed.CreateDemoData(ctx, deps.Repos, deps.Logger); err != nil {
			deps.Logger.Error().Err(err).Msg("Demo seed failed")
		}
	}

	deps.Session.Restore(ctx)
	if user, ok := deps.Session.Current(); ok {
		fmt.Printf("Signed in as %s <%s> (%s)\n", user.DisplayName, user.Email, user.Role)
	} else {
		fmt.Println("No active session")
	}

	posts, err := deps.Repos.Posts.List(ctx, "")
	if err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to load feed")
		os.Exit(1)
	}

	fmt.Printf("Feed (%d posts):\n", len(posts))
	for _, p := range posts {
		fmt.Printf("  [%s] %s by %s (likes=%d saves=%d)\n", p.Type, p.Title, p.AuthorName, p.Likes, p.Saves)
	}

	overview := deps.Moderation.DashboardOverview(ctx)
	fmt.Printf("Pending: %d submissions, %d reports\n",
		len(overview.PendingSubmissions), len(overview.PendingReports))
}
