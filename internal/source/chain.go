// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// BuildMerged loads every source and folds the results into one [Values]
// view. Sources are folded in ascending precedence, so for any key defined by
// several sources the value of the highest-ranked one wins.
//
// Loading happens in two phases. Local sources load first in ascending
// order; [Deferred] sources then load with a copy of the merged local view.
// Neither phase changes the fold order.
//
// A [ConfigSourceUnavailableError] from an optional source is logged as a
// warning and the chain continues without that source. Every other error,
// including context cancellation, stops the chain.
//
// An empty source list yields an empty view.
func BuildMerged(ctx context.Context, log *logger.Logger, sources ...Source) (Values, error) {
	ordered, err := sortByPrecedence(sources)
	if err != nil {
		return nil, err
	}

	snapshots := make([][]Entry, len(ordered))
	local := make(Values)

	for i, src := range ordered {
		if isDeferred(src) {
			continue
		}
		entries, err := loadSource(ctx, log, src, local.Clone())
		if err != nil {
			return nil, err
		}
		snapshots[i] = entries
		local.apply(entries)
	}

	for i, src := range ordered {
		if !isDeferred(src) {
			continue
		}
		entries, err := loadSource(ctx, log, src, local.Clone())
		if err != nil {
			return nil, err
		}
		snapshots[i] = entries
	}

	merged := make(Values)
	for _, snapshot := range snapshots {
		merged.apply(snapshot)
	}

	log.Debug().Int("sources", len(ordered)).Int("keys", len(merged)).Msg("configuration sources merged")
	return merged, nil
}

func loadSource(ctx context.Context, log *logger.Logger, src Source, local Values) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading config source %q: %w", src.Name(), err)
	}

	entries, err := src.Load(ctx, local)
	if err == nil {
		log.Debug().
			Str("source", src.Name()).
			Int("precedence", src.Precedence()).
			Int("entries", len(entries)).
			Msg("config source loaded")
		return entries, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("loading config source %q: %w", src.Name(), errors.Join(ctxErr, err))
	}

	var unavailable *ConfigSourceUnavailableError
	if errors.As(err, &unavailable) && !unavailable.Required {
		log.Warn().
			Err(err).
			Str("source", src.Name()).
			Msg("optional config source unavailable, continuing without it")
		return nil, nil
	}

	return nil, fmt.Errorf("loading config source %q: %w", src.Name(), err)
}

func sortByPrecedence(sources []Source) ([]Source, error) {
	ordered := slices.Clone(sources)
	slices.SortStableFunc(ordered, func(a, b Source) int {
		return cmp.Compare(a.Precedence(), b.Precedence())
	})

	for i := 1; i < len(ordered); i++ {
		if ordered[i].Precedence() == ordered[i-1].Precedence() {
			return nil, fmt.Errorf("%w: %q and %q share rank %d",
				ErrDuplicatePrecedence, ordered[i-1].Name(), ordered[i].Name(), ordered[i].Precedence())
		}
	}

	return ordered, nil
}
