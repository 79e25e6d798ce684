// Package creator runs the scaffolding steps for a new Haluka.js app.
package creator

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/haluker/create-app/internal/filesystem"
	"github.com/haluker/create-app/internal/guard"
	"github.com/haluker/create-app/internal/logging"
	"github.com/haluker/create-app/internal/manifest"
	"github.com/haluker/create-app/internal/models"
	"github.com/haluker/create-app/internal/scaffold"
	"github.com/haluker/create-app/internal/tui"
	"github.com/rs/zerolog"
)

// Dependencies are installed into every new app.
var Dependencies = []string{
	"github:haluker/haluka-ignite",
	"github:haluker/haluka-mongoose",
	"github:haluker/haluka-passport",
	"github:haluker/haluka-mail",
	"github:haluker/haluka-sass",
	"github:haluker/haluka-axe",
}

// DevDependencies are installed with the dev flag after Dependencies.
var DevDependencies = []string{}

// Installer installs packages into a project root.
type Installer interface {
	Install(ctx context.Context, root string, dependencies []string, flags models.InstallFlags) error
}

// OnlineChecker reports whether the package registry is reachable.
type OnlineChecker interface {
	IsOnline(ctx context.Context) bool
}

// Result describes a created app.
type Result struct {
	Name           string
	Root           string
	PackageManager models.PackageManager
	ManifestPath   string
	Files          []string
}

// Creator scaffolds a project: guard checks, manifest, install, template copy.
type Creator struct {
	fs        filesystem.FileSystem
	guard     *guard.Guard
	installer Installer
	copier    *scaffold.Copier
	online    OnlineChecker
	template  fs.FS
	out       io.Writer
	cwd       string
	log       zerolog.Logger

	dependencies    []string
	devDependencies []string
}

// Option configures a Creator.
type Option func(*Creator)

// WithTemplate replaces the bundled template.
func WithTemplate(tmpl fs.FS) Option {
	return func(c *Creator) {
		c.template = tmpl
	}
}

// WithDependencies replaces the dependency lists.
func WithDependencies(deps, devDeps []string) Option {
	return func(c *Creator) {
		c.dependencies = deps
		c.devDependencies = devDeps
	}
}

// WithOnlineCheck makes yarn installs depend on a registry connectivity
// check. Without it yarn always installs with --offline.
func WithOnlineCheck(online OnlineChecker) Option {
	return func(c *Creator) {
		c.online = online
	}
}

// WithWorkingDir sets the directory the user ran the command from; it only
// shortens the "cd" hint of the success summary.
func WithWorkingDir(dir string) Option {
	return func(c *Creator) {
		c.cwd = dir
	}
}

// New creates a Creator writing progress to out.
func New(fsys filesystem.FileSystem, installer Installer, out io.Writer, options ...Option) *Creator {
	c := &Creator{
		fs:              fsys,
		guard:           guard.New(fsys),
		installer:       installer,
		copier:          scaffold.NewCopier(fsys),
		template:        scaffold.Template(),
		out:             out,
		log:             logging.GetLogger("creator"),
		dependencies:    Dependencies,
		devDependencies: DevDependencies,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Create scaffolds req.Root. Each step gates the next; a failure after the
// guard checks leaves the directory partially populated.
func (c *Creator) Create(ctx context.Context, req models.ProjectRequest) (*Result, error) {
	if err := c.guard.CheckWritable(req.Root); err != nil {
		return nil, err
	}
	if err := c.guard.EnsureEmpty(req.Root); err != nil {
		return nil, err
	}

	name := req.Name()
	pm := req.PackageManager

	c.printf("Creating a new Haluka.js app in %s.\n\n", tui.PathStyle.Render(req.Root))
	c.printf("%s\n", tui.TitleStyle.Render(fmt.Sprintf("Using %s.", pm)))

	manifestPath, err := manifest.Write(c.fs, req.Root, manifest.New(name))
	if err != nil {
		return nil, err
	}
	c.log.Debug().Str("path", manifestPath).Msg("Wrote manifest")

	flags := models.InstallFlags{
		PackageManager: pm,
		Online:         c.isOnline(ctx, req),
	}

	if len(c.dependencies) > 0 {
		c.printDependencies("Installing dependencies:", c.dependencies)
		if err := c.installer.Install(ctx, req.Root, c.dependencies, flags); err != nil {
			return nil, err
		}
	}

	if len(c.devDependencies) > 0 {
		c.printDependencies("Installing devDependencies:", c.devDependencies)
		devFlags := flags
		devFlags.DevDependencies = true
		if err := c.installer.Install(ctx, req.Root, c.devDependencies, devFlags); err != nil {
			return nil, err
		}
	}
	c.printf("\n")

	files, err := c.copier.Copy(c.template, req.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to copy template: %w", err)
	}

	result := &Result{
		Name:           name,
		Root:           req.Root,
		PackageManager: pm,
		ManifestPath:   manifestPath,
		Files:          files,
	}

	summary, err := RenderSummary(result, c.cwd)
	if err != nil {
		return nil, err
	}
	c.printf("%s", summary)

	return result, nil
}

// isOnline only matters for yarn, the one manager that gets an offline flag
// when dependencies are added. npm and pnpm count as online, yarn as offline
// unless an online check was configured.
func (c *Creator) isOnline(ctx context.Context, req models.ProjectRequest) bool {
	if req.Offline {
		return false
	}
	if !req.PackageManager.IsYarn() {
		return true
	}
	if c.online == nil {
		return false
	}
	online := c.online.IsOnline(ctx)
	c.log.Debug().Bool("online", online).Msg("Checked registry connectivity")
	return online
}

func (c *Creator) printDependencies(title string, deps []string) {
	c.printf("\n%s\n", title)
	for _, dep := range deps {
		c.printf("- %s\n", tui.CommandStyle.Render(dep))
	}
	c.printf("\n")
}

func (c *Creator) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
