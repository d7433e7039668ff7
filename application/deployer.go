// Package application sequences the deployment flow: guard checks,
// configuration, preflight, repository ensuring, and pushes.
package application

import (
	"context"
	"os"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"gitship/config"
	"gitship/domain"
)

const (
	// DeployEnvVar must hold exactly "true" for a deployment to run.
	DeployEnvVar = "DEPLOY"

	// DefaultBuildDirName is the build-output directory expected under
	// the project root.
	DefaultBuildDirName = "public"

	defaultBranch = "main"

	labelPublic  = "public"
	labelPrivate = "private"
)

// Deployer orchestrates a single deployment: it reads the resolved
// mode and sequences ensure and push calls accordingly. One invocation
// per build; fully synchronous.
type Deployer struct {
	checker     domain.EnvironmentChecker
	tokens      domain.TokenSource
	newAPI      domain.APIFactory
	pusher      domain.Pusher
	settleDelay time.Duration
}

// NewDeployer creates a deployer from its collaborators.
func NewDeployer(
	checker domain.EnvironmentChecker,
	tokens domain.TokenSource,
	newAPI domain.APIFactory,
	pusher domain.Pusher,
) *Deployer {
	return &Deployer{
		checker:     checker,
		tokens:      tokens,
		newAPI:      newAPI,
		pusher:      pusher,
		settleDelay: creationSettleDelay,
	}
}

// Options holds per-invocation settings for Deploy.
type Options struct {
	ProjectDir string // project root; source of full-tree pushes
	BuildDir   string // build output dir; default <ProjectDir>/public
	ConfigPath string // default <ProjectDir>/deploy.yaml
	DryRun     bool   // log the plan without touching anything
}

// Deploy runs the deployment flow once. Soft-skips (opt-out, missing
// config, incomplete repo names, unknown mode) return nil; fatal
// conditions (preflight, token, repository query/create failures)
// return an error and make the process exit non-zero.
func (d *Deployer) Deploy(ctx context.Context, opts Options) error {
	if os.Getenv(DeployEnvVar) != "true" {
		logger.Infof("%s is not \"true\", skipping deployment", DeployEnvVar)
		return nil
	}

	buildDir := opts.BuildDir
	if buildDir == "" {
		buildDir = filepath.Join(opts.ProjectDir, DefaultBuildDirName)
	}
	if info, err := os.Stat(buildDir); err != nil || !info.IsDir() {
		logger.Warnf("Build output directory %s not found; run the build first", buildDir)
		return nil
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.Path(opts.ProjectDir)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil // missing config; Load already warned
	}

	mode, ok := domain.ParseMode(cfg.Deploy.Mode)
	if !ok {
		logger.Warnf("Unknown deployment mode %q, skipping deployment", cfg.Deploy.Mode)
		return nil
	}

	switch mode {
	case domain.ModeNone:
		logger.Info("Deployment mode is none, nothing to deploy")
		return nil
	case domain.ModePublicOnly:
		if cfg.Deploy.PublicRepo == "" {
			logger.Warn("Mode public-only needs deploy.public_repo, skipping deployment")
			return nil
		}
	case domain.ModeSplit:
		if cfg.Deploy.PublicRepo == "" || cfg.Deploy.PrivateRepo == "" {
			logger.Warn("Mode split needs both deploy.public_repo and deploy.private_repo, skipping deployment")
			return nil
		}
	}

	branch := cfg.Deploy.Branch
	if branch == "" {
		branch = defaultBranch
	}

	if opts.DryRun {
		d.logPlan(cfg, mode, branch, buildDir, opts.ProjectDir)
		return nil
	}

	if verifyErr := d.checker.Verify(ctx); verifyErr != nil {
		return verifyErr
	}

	token, tokenErr := d.tokens.Token(ctx)
	if tokenErr != nil {
		return tokenErr
	}
	api := d.newAPI(token)

	// Owner of the remote URLs: the configured CDN user, or the token's
	// user when none is configured.
	owner := cfg.CDN.User
	if owner == "" {
		owner, err = api.AuthenticatedUser(ctx)
		if err != nil {
			return err
		}
	}

	// Repositories are created in an organization only when the config
	// says the CDN user is one; otherwise under the authenticated user.
	ensureOwner := ""
	if cfg.CDN.Org {
		ensureOwner = cfg.CDN.User
	}

	ensurer := &Ensurer{api: api, settleDelay: d.settleDelay}

	switch mode {
	case domain.ModePublicOnly:
		if ensureErr := ensurer.Ensure(ctx, domain.RepoSpec{
			Name:  cfg.Deploy.PublicRepo,
			Owner: ensureOwner,
		}); ensureErr != nil {
			return ensureErr
		}
		d.pusher.Push(ctx, domain.PushSpec{
			Dir:       opts.ProjectDir,
			RemoteURL: domain.SSHRemoteURL(owner, cfg.Deploy.PublicRepo),
			Branch:    branch,
			Label:     labelPublic,
		})

	case domain.ModeSplit:
		if ensureErr := ensurer.Ensure(ctx, domain.RepoSpec{
			Name:  cfg.Deploy.PublicRepo,
			Owner: ensureOwner,
		}); ensureErr != nil {
			return ensureErr
		}
		if ensureErr := ensurer.Ensure(ctx, domain.RepoSpec{
			Name:    cfg.Deploy.PrivateRepo,
			Private: true,
			Owner:   ensureOwner,
		}); ensureErr != nil {
			return ensureErr
		}
		// Two independent targets: build output to the public repo,
		// full project to the private one. Sequential, never parallel.
		d.pusher.Push(ctx, domain.PushSpec{
			Dir:       buildDir,
			RemoteURL: domain.SSHRemoteURL(owner, cfg.Deploy.PublicRepo),
			Branch:    branch,
			Label:     labelPublic,
		})
		d.pusher.Push(ctx, domain.PushSpec{
			Dir:       opts.ProjectDir,
			RemoteURL: domain.SSHRemoteURL(owner, cfg.Deploy.PrivateRepo),
			Branch:    branch,
			Label:     labelPrivate,
		})

	case domain.ModeNone:
		// handled above
	}

	logger.Info("Deployment complete")
	return nil
}

// logPlan describes what a real run would do, without network or
// subprocess side effects. The owner may still be unresolved here
// because resolving it needs the API.
func (d *Deployer) logPlan(cfg *config.Config, mode domain.Mode, branch, buildDir, projectDir string) {
	owner := cfg.CDN.User
	if owner == "" {
		owner = "<authenticated user>"
	}

	switch mode {
	case domain.ModePublicOnly:
		logger.Infof("[DRY RUN] Would ensure %s/%s (public) and push %s to it (branch %s)",
			owner, cfg.Deploy.PublicRepo, projectDir, branch)
	case domain.ModeSplit:
		logger.Infof("[DRY RUN] Would ensure %s/%s (public) and push %s to it (branch %s)",
			owner, cfg.Deploy.PublicRepo, buildDir, branch)
		logger.Infof("[DRY RUN] Would ensure %s/%s (private) and push %s to it (branch %s)",
			owner, cfg.Deploy.PrivateRepo, projectDir, branch)
	case domain.ModeNone:
	}
}
