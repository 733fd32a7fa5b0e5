// File: internal/profile/snapshot.go
//
// Package profile loads every configured spec family into an immutable Snapshot and
// resolves snapshots against a device.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/gridspec/api/schemas"
	"github.com/xkilldash9x/gridspec/internal/config"
	"github.com/xkilldash9x/gridspec/internal/responsive"
	"github.com/xkilldash9x/gridspec/internal/specparser"
)

// Snapshot is one loaded set of spec families. It is never modified after Load returns
// and may be shared freely between goroutines.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	Density  float64

	Workspace *responsive.SpecGroups[*responsive.WorkspaceSpecs]
	// AllApps and Folder are nil when no document is configured for them.
	AllApps *responsive.SpecGroups[*responsive.AllAppsSpecs]
	Folder  *responsive.SpecGroups[*responsive.FolderSpecs]

	Reports []schemas.DocumentReport
}

// Loader reads the documents named by a SpecsConfig.
type Loader struct {
	cfg    config.SpecsConfig
	parser *specparser.Parser
	logger *zap.Logger
	now    func() time.Time
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(cfg config.SpecsConfig, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		cfg:    cfg,
		parser: specparser.New(cfg.Density),
		logger: logger.Named("profile"),
		now:    time.Now,
	}
}

// Paths returns every configured document path, workspace first.
func (l *Loader) Paths() []string {
	paths := []string{l.cfg.WorkspacePath}
	for _, p := range []string{l.cfg.AllAppsPath, l.cfg.FolderPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// familyResult is what loading one document produces.
type familyResult[S any] struct {
	groups *responsive.SpecGroups[S]
	report schemas.DocumentReport
}

// Load parses and builds every configured family concurrently. The first failure cancels
// the remaining work and no snapshot is returned.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	start := l.now()
	g, groupCtx := errgroup.WithContext(ctx)

	var (
		workspace familyResult[*responsive.WorkspaceSpecs]
		allApps   familyResult[*responsive.AllAppsSpecs]
		folder    familyResult[*responsive.FolderSpecs]
	)
	g.Go(func() (err error) {
		workspace, err = loadFamily(groupCtx, l.parser, schemas.FamilyWorkspace, l.cfg.WorkspacePath, specparser.WorkspaceSpecTag, responsive.NewWorkspaceSpecs)
		return err
	})
	if l.cfg.AllAppsPath != "" {
		g.Go(func() (err error) {
			allApps, err = loadFamily(groupCtx, l.parser, schemas.FamilyAllApps, l.cfg.AllAppsPath, specparser.AllAppsSpecTag, responsive.NewAllAppsSpecs)
			return err
		})
	}
	if l.cfg.FolderPath != "" {
		g.Go(func() (err error) {
			folder, err = loadFamily(groupCtx, l.parser, schemas.FamilyFolder, l.cfg.FolderPath, specparser.FolderSpecTag, responsive.NewFolderSpecs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		l.logger.Error("Failed to load spec snapshot", zap.Error(err))
		return nil, err
	}

	snap := &Snapshot{
		ID:        uuid.New(),
		LoadedAt:  l.now(),
		Density:   l.parser.Density(),
		Workspace: workspace.groups,
		AllApps:   allApps.groups,
		Folder:    folder.groups,
		Reports:   []schemas.DocumentReport{workspace.report},
	}
	if snap.AllApps != nil {
		snap.Reports = append(snap.Reports, allApps.report)
	}
	if snap.Folder != nil {
		snap.Reports = append(snap.Reports, folder.report)
	}

	l.logger.Info("Loaded spec snapshot",
		zap.String("snapshot_id", snap.ID.String()),
		zap.Int("families", len(snap.Reports)),
		zap.Duration("took", snap.LoadedAt.Sub(start)))
	return snap, nil
}

// Validate loads every configured family independently and reports each one, including
// the ones that failed. It returns an error only when ctx is done.
func (l *Loader) Validate(ctx context.Context) ([]schemas.DocumentReport, error) {
	reports := []schemas.DocumentReport{
		validateFamily(ctx, l.parser, schemas.FamilyWorkspace, l.cfg.WorkspacePath, specparser.WorkspaceSpecTag, responsive.NewWorkspaceSpecs),
	}
	if l.cfg.AllAppsPath != "" {
		reports = append(reports, validateFamily(ctx, l.parser, schemas.FamilyAllApps, l.cfg.AllAppsPath, specparser.AllAppsSpecTag, responsive.NewAllAppsSpecs))
	}
	if l.cfg.FolderPath != "" {
		reports = append(reports, validateFamily(ctx, l.parser, schemas.FamilyFolder, l.cfg.FolderPath, specparser.FolderSpecTag, responsive.NewFolderSpecs))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, r := range reports {
		if !r.Valid() {
			l.logger.Warn("Spec document is invalid", zap.String("family", string(r.Family)), zap.String("path", r.Path), zap.String("error", r.Error))
		}
	}
	return reports, nil
}

func validateFamily[S any](ctx context.Context, p *specparser.Parser, family schemas.Family, path, tag string, build func([]responsive.ResponsiveSpec) (S, error)) schemas.DocumentReport {
	res, err := loadFamily(ctx, p, family, path, tag, build)
	if err != nil {
		res.report.Error = err.Error()
	}
	return res.report
}

func loadFamily[S any](ctx context.Context, p *specparser.Parser, family schemas.Family, path, tag string, build func([]responsive.ResponsiveSpec) (S, error)) (familyResult[S], error) {
	res := familyResult[S]{report: schemas.DocumentReport{Family: family, Path: path}}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	raw, err := p.ParseFile(path, tag)
	if err != nil {
		return res, fmt.Errorf("failed to load %s specs: %w", family, err)
	}
	res.report.Groups = len(raw)
	for _, g := range raw {
		for _, e := range g.Entries {
			if e.Axis == responsive.Width {
				res.report.WidthSpecs++
			} else {
				res.report.HeightSpecs++
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	groups, err := responsive.BuildGroups(raw, build)
	if err != nil {
		return res, fmt.Errorf("failed to build %s specs from %s: %w", family, path, err)
	}
	res.groups = groups
	return res, nil
}

// ErrNoSnapshot is returned when resolving before any snapshot was loaded.
var ErrNoSnapshot = errors.New("no spec snapshot loaded")
