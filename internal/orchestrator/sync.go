package orchestrator

import (
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/triad369/launchpad/internal/registry"
)

// Sync clones each app's repository into the workspace, or pulls the
// latest changes when the repo root already exists. A VCS failure is
// recorded for that app and the batch continues.
func (o *Orchestrator) Sync(apps []registry.AppDescriptor) []Result {
	results := make([]Result, 0, len(apps))
	for _, app := range apps {
		results = append(results, o.syncOne(app))
	}
	o.Audit.Write("sync", map[string]any{"apps": len(apps), "failed": countFailed(results)})
	return results
}

func (o *Orchestrator) syncOne(app registry.AppDescriptor) Result {
	if app.RepoURL == "" {
		warnColor.Printf("! %s: no repo_url, skipping\n", app.Name)
		return Result{App: app.Name, Outcome: Skipped, Detail: "no repo_url"}
	}

	root := o.repoRoot(app)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		infoColor.Printf("→ Cloning %s into %s\n", app.RepoURL, root)
		_, err := git.PlainClone(root, false, &git.CloneOptions{
			URL:      app.RepoURL,
			Progress: os.Stderr,
		})
		if err != nil {
			errorColor.Printf("✗ %s: clone failed: %v\n", app.Name, err)
			return Result{App: app.Name, Outcome: Failed, Err: fmt.Errorf("clone failed: %w", err)}
		}
		successColor.Printf("✓ %s cloned\n", app.Name)
		return Result{App: app.Name, Outcome: OK, Detail: "cloned"}
	}

	infoColor.Printf("→ Pulling %s\n", root)
	repo, err := git.PlainOpen(root)
	if err != nil {
		errorColor.Printf("✗ %s: %s is not a git repo: %v\n", app.Name, root, err)
		return Result{App: app.Name, Outcome: Failed, Err: fmt.Errorf("open repo: %w", err)}
	}
	wt, err := repo.Worktree()
	if err != nil {
		return Result{App: app.Name, Outcome: Failed, Err: fmt.Errorf("worktree: %w", err)}
	}
	err = wt.Pull(&git.PullOptions{RemoteName: "origin", Progress: os.Stderr})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		successColor.Printf("✓ %s already up to date\n", app.Name)
		return Result{App: app.Name, Outcome: OK, Detail: "up to date"}
	}
	if err != nil {
		errorColor.Printf("✗ %s: pull failed: %v\n", app.Name, err)
		return Result{App: app.Name, Outcome: Failed, Err: fmt.Errorf("pull failed: %w", err)}
	}
	successColor.Printf("✓ %s pulled\n", app.Name)
	return Result{App: app.Name, Outcome: OK, Detail: "pulled"}
}

func countFailed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Outcome == Failed {
			n++
		}
	}
	return n
}
