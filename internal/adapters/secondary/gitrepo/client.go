package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"gallery-service/internal/config"
	"gallery-service/internal/core/domain"
)

const dirPerm = 0o755

// Client inspects and synchronizes exhibit checkouts with the git binary.
// It satisfies both RepositoryInspector and RepositorySyncer.
type Client struct {
	timeout      time.Duration
	checkUpdates bool
}

func NewClient(cfg *config.GitConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		timeout:      timeout,
		checkUpdates: cfg.CheckUpdates,
	}
}

// Inspect reports the checkout at localPath. A directory without .git is
// treated as not cloned.
func (c *Client) Inspect(ctx context.Context, localPath string, branch string) (domain.RepoState, error) {
	if !isCheckout(localPath) {
		return domain.RepoState{}, nil
	}
	if err := ensureGit(); err != nil {
		return domain.RepoState{}, err
	}

	revision, err := c.run(ctx, localPath, "rev-parse", "HEAD")
	if err != nil {
		return domain.RepoState{}, err
	}

	state := domain.RepoState{Cloned: true, Revision: revision}

	committed, err := c.run(ctx, localPath, "log", "-1", "--format=%cI")
	if err != nil {
		return domain.RepoState{}, err
	}
	if ts, err := time.Parse(time.RFC3339, committed); err == nil {
		state.LastUpdated = ts
	}

	if c.checkUpdates {
		if _, err := c.run(ctx, localPath, "fetch", "--quiet"); err != nil {
			// Offline or private remotes must not hide the checkout itself.
			log.WithError(err).WithField("local_path", localPath).Debug("git fetch failed, skipping update check")
			return state, nil
		}
		behind, err := c.run(ctx, localPath, "rev-list", "--count", "HEAD.."+upstreamRef(branch))
		if err != nil {
			log.WithError(err).WithField("local_path", localPath).Debug("no upstream to compare against")
			return state, nil
		}
		n, _ := strconv.Atoi(behind)
		state.UpdatesAvailable = n > 0
	}

	return state, nil
}

// Sync clones src into localPath, or fast-forwards an existing checkout.
// A localPath that exists, is not a checkout and is not an empty directory
// is left alone and reported as ErrCheckoutConflict.
func (c *Client) Sync(ctx context.Context, src domain.ExhibitSource, localPath string) (domain.SyncAction, error) {
	if err := ensureGit(); err != nil {
		return "", err
	}

	if isCheckout(localPath) {
		return c.pull(ctx, localPath)
	}

	existed, err := checkCloneTarget(localPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(localPath), dirPerm); err != nil {
		return "", fmt.Errorf("creating destination directory: %w", err)
	}

	args := []string{"clone"}
	if src.Depth > 0 {
		args = append(args, "--depth="+strconv.Itoa(src.Depth))
	}
	if src.Branch != "" {
		args = append(args, "--branch", src.Branch)
	}
	args = append(args, src.Git, localPath)

	if _, err := c.run(ctx, "", args...); err != nil {
		// git empties a pre-existing directory itself; only what this call
		// created is removed.
		if !existed {
			_ = os.RemoveAll(localPath)
		}
		return "", fmt.Errorf("%w: %w", domain.ErrSyncFailed, err)
	}
	return domain.SyncCloned, nil
}

func (c *Client) pull(ctx context.Context, localPath string) (domain.SyncAction, error) {
	before, err := c.run(ctx, localPath, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSyncFailed, err)
	}
	if _, err := c.run(ctx, localPath, "pull", "--ff-only"); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSyncFailed, err)
	}
	after, err := c.run(ctx, localPath, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSyncFailed, err)
	}
	if before == after {
		return domain.SyncUpToDate, nil
	}
	return domain.SyncUpdated, nil
}

// checkCloneTarget reports whether localPath already exists. Only a missing
// path or an empty directory may be cloned into.
func checkCloneTarget(localPath string) (bool, error) {
	info, err := os.Stat(localPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking destination: %w", err)
	}
	if !info.IsDir() {
		return true, fmt.Errorf("%w: %s", domain.ErrCheckoutConflict, localPath)
	}
	entries, err := os.ReadDir(localPath)
	if err != nil {
		return true, fmt.Errorf("checking destination: %w", err)
	}
	if len(entries) > 0 {
		return true, fmt.Errorf("%w: %s is not empty", domain.ErrCheckoutConflict, localPath)
	}
	return true, nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	// Never block on a credential prompt for private repositories.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w\n%s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

func upstreamRef(branch string) string {
	if branch == "" {
		return "@{u}"
	}
	return "origin/" + branch
}

func isCheckout(localPath string) bool {
	_, err := os.Stat(filepath.Join(localPath, ".git"))
	return err == nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return domain.ErrGitUnavailable
	}
	return nil
}
