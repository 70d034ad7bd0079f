package app

import (
	"context"
	"errors"
	"path/filepath"

	"shotfix/internal/domain"
	"shotfix/internal/logging"
)

// ProgressFunc is called during scanning to report progress
type ProgressFunc func(current, total int)

// Planner previews an execution without writing or renaming anything.
type Planner struct {
	FS         FileSystem
	Codec      Codec
	Logger     logging.Logger
	OnProgress ProgressFunc
}

func (p *Planner) Plan(ctx context.Context, settings domain.Settings) (domain.Plan, error) {
	if p.FS == nil || p.Codec == nil {
		return domain.Plan{}, errors.New("planner requires FS and Codec")
	}

	stop := p.Logger.Measure("Planning conversion")
	defer stop()

	entries, err := p.FS.ReadDir(settings.SourceDir)
	if err != nil {
		return domain.Plan{}, err
	}

	var plan domain.Plan
	total := len(entries)
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return domain.Plan{}, err
		}
		if entry.IsDir() || !domain.IsImageExtension(entry.Name()) {
			plan.IgnoredCount++
		} else {
			item := p.planFile(settings, domain.NewImageFile(filepath.Join(settings.SourceDir, entry.Name())))
			switch item.Action {
			case domain.ActionConvert:
				plan.ConvertCount++
			case domain.ActionSkip:
				plan.SkipCount++
			default:
				plan.ErrorCount++
			}
			plan.Items = append(plan.Items, item)
		}
		if p.OnProgress != nil {
			p.OnProgress(i+1, total)
		}
	}

	p.Logger.Verbosef("Planned %d conversions, %d skipped, %d unusable, %d ignored entries",
		plan.ConvertCount, plan.SkipCount, plan.ErrorCount, plan.IgnoredCount)
	return plan, nil
}

func (p *Planner) planFile(settings domain.Settings, file domain.ImageFile) domain.PlanItem {
	item := domain.PlanItem{File: file}

	cfg, err := p.Codec.DecodeConfig(file.Path)
	if err != nil {
		item.Action = domain.ActionUnreadable
		if domain.DecodeKind(err) == domain.Corrupt {
			item.Action = domain.ActionCorrupt
		}
		return item
	}

	item.Width, item.Height = cfg.Width, cfg.Height
	ok, reason := domain.ShouldResize(item.Width, item.Height)
	if !ok {
		item.Action = domain.ActionSkip
		item.Reason = reason
		return item
	}
	item.Action = domain.ActionConvert
	item.TargetPath, item.RenamePath = settings.Targets(file.Name)
	return item
}
