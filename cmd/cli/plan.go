package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/limaJavier/sectionplanner/internal/store"
	"github.com/limaJavier/sectionplanner/pkg/catalog"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/limaJavier/sectionplanner/pkg/planner"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Registers the flags shared by every command that generates combinations
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog", "", "Catalog JSON file to resolve sections from; the configured database is used when empty")
	cmd.Flags().Uint64("limit", 0, "Maximum amount of combinations; overrides the configured limit when greater than 0")
}

// Accepts ids as separate arguments, comma-separated lists or both
func parseSectionIds(args []string) ([]uint64, error) {
	sectionIds := make([]uint64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			sectionId, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid section id \"%v\"", field)
			}
			sectionIds = append(sectionIds, sectionId)
		}
	}
	return sectionIds, nil
}

func openRepository() (*store.Repository, error) {
	db, err := store.Open(cfg.Database.Driver, cfg.Database.Dsn)
	if err != nil {
		return nil, err
	}
	return store.NewRepository(db), nil
}

// Resolves the selection given on the command line and generates its combinations
func generatePlan(cmd *cobra.Command, args []string) (planner.Plan, error) {
	sectionIds, err := parseSectionIds(args)
	if err != nil {
		return planner.Plan{}, err
	}

	var resolver catalog.Resolver
	catalogFile, _ := cmd.Flags().GetString("catalog")
	if catalogFile != "" {
		catalogue, err := catalog.FromJson(catalogFile)
		if err != nil {
			return planner.Plan{}, err
		}
		if resolver, err = catalog.NewResolver(catalogue); err != nil {
			return planner.Plan{}, err
		}
	} else {
		repository, err := openRepository()
		if err != nil {
			return planner.Plan{}, err
		}
		defer repository.Close()
		resolver = repository
	}

	opts := cfg.GeneratorOptions()
	if limit, _ := cmd.Flags().GetUint64("limit"); limit > 0 {
		opts = append(opts, model.WithLimit(limit))
	}

	service := planner.NewService(resolver, model.NewCombinationGenerator(opts...), log.With().Str("component", "planner").Logger())
	plan, err := service.Generate(contextOf(cmd), sectionIds)
	if err != nil {
		return planner.Plan{}, err
	}

	if !plan.Verify() {
		return planner.Plan{}, errVerification
	}
	return plan, nil
}

// Picks a combination by its 1-based position or by its token
func pickCombination(plan planner.Plan, position uint64, token string) (model.ScheduleCombination, error) {
	if token != "" {
		combination, ok := lo.Find(plan.Combinations, func(combination model.ScheduleCombination) bool { return combination.Token == token })
		if !ok {
			return model.ScheduleCombination{}, fmt.Errorf("no combination has token %v", token)
		}
		return combination, nil
	}

	if position == 0 || position > uint64(len(plan.Combinations)) {
		return model.ScheduleCombination{}, fmt.Errorf("combination %v does not exist, there are %v", position, len(plan.Combinations))
	}
	return plan.Combinations[position-1], nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
